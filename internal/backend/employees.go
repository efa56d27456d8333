package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/techexpo/console/internal/domain/employee"
)

func (c *Client) Employees(ctx context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	if err := c.doJSON(ctx, http.MethodGet, c.path("/employees"), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateEmployee(ctx context.Context, p employee.Payload) (employee.Employee, error) {
	var out employee.Employee
	if err := c.doJSON(ctx, http.MethodPost, c.path("/employees"), p, &out); err != nil {
		return employee.Employee{}, err
	}
	return out, nil
}

func (c *Client) UpdateEmployee(ctx context.Context, id int64, p employee.Payload) (employee.Employee, error) {
	var out employee.Employee
	if err := c.doJSON(ctx, http.MethodPut, c.path(fmt.Sprintf("/employees/%d", id)), p, &out); err != nil {
		return employee.Employee{}, err
	}
	return out, nil
}

func (c *Client) DeleteEmployee(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, c.path(fmt.Sprintf("/employees/%d", id)), nil, nil)
}
