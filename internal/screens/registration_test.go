package screens

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/techexpo/console/internal/domain/exhibition"
	"github.com/techexpo/console/internal/domain/product"
	"github.com/techexpo/console/internal/domain/visitor"
)

type fakeRegistrationAPI struct {
	exhibition exhibition.Exhibition
	exhibErr   error
	products   []product.Product
	productErr error
	createFn   func(ctx context.Context, v visitor.Visitor) (visitor.CreateResponse, error)

	exhibCalls   int
	productCalls int
	creates      int
}

func (f *fakeRegistrationAPI) PublicExhibition(ctx context.Context, id int64) (exhibition.Exhibition, error) {
	f.exhibCalls++
	return f.exhibition, f.exhibErr
}

func (f *fakeRegistrationAPI) PublicProducts(ctx context.Context) ([]product.Product, error) {
	f.productCalls++
	return f.products, f.productErr
}

func (f *fakeRegistrationAPI) CreateVisitor(ctx context.Context, v visitor.Visitor) (visitor.CreateResponse, error) {
	f.creates++
	if f.createFn != nil {
		return f.createFn(ctx, v)
	}
	return visitor.CreateResponse{Visitor: v, EmailSent: true}, nil
}

func validRegistrationForm() RegistrationForm {
	return RegistrationForm{
		Name:    "Asha Rao",
		Email:   "asha@example.com",
		Phone:   "9876543210",
		Consent: true,
	}
}

func TestRegistrationLoadPopulatesForm(t *testing.T) {
	api := &fakeRegistrationAPI{
		exhibition: exhibition.Exhibition{ID: 7, Name: "Tech Expo", Active: true},
		products:   []product.Product{{ID: 1, Name: "Widget"}},
	}
	s := NewRegistration(api, 7)

	if got := s.State().Phase; got != RegistrationLoading {
		t.Fatalf("phase before load = %q, want loading", got)
	}

	s.Load(context.Background())

	state := s.State()
	if state.Phase != RegistrationReady {
		t.Fatalf("phase = %q, want ready", state.Phase)
	}
	if state.Exhibition.ID != 7 || len(state.Products) != 1 {
		t.Fatalf("state = %+v, want exhibition 7 with 1 product", state)
	}
}

func TestRegistrationLoadFailureBlocksSubmit(t *testing.T) {
	api := &fakeRegistrationAPI{exhibErr: errors.New("not found")}
	s := NewRegistration(api, 99)

	s.Load(context.Background())

	state := s.State()
	if state.Phase != RegistrationError {
		t.Fatalf("phase = %q, want error", state.Phase)
	}
	if state.LoadError == "" {
		t.Fatal("load error message should be set")
	}

	// the error state does not accept submissions
	if s.Submit(context.Background(), validRegistrationForm()) {
		t.Fatal("submit must fail in the error state")
	}
	if api.creates != 0 {
		t.Fatalf("creates = %d, want 0", api.creates)
	}
}

func TestRegistrationLoadRetriesAfterFailure(t *testing.T) {
	api := &fakeRegistrationAPI{
		exhibition: exhibition.Exhibition{ID: 7, Name: "Tech Expo", Active: true},
		products:   []product.Product{{ID: 1, Name: "Widget"}},
		exhibErr:   errors.New("upstream down"),
	}
	s := NewRegistration(api, 7)

	s.Load(context.Background())
	if got := s.State().Phase; got != RegistrationError {
		t.Fatalf("phase after failed load = %q, want error", got)
	}

	// the backend comes back; the next load recovers the form
	api.exhibErr = nil
	s.Load(context.Background())

	state := s.State()
	if state.Phase != RegistrationReady {
		t.Fatalf("phase after retry = %q, want ready", state.Phase)
	}
	if state.LoadError != "" {
		t.Fatalf("loadError = %q, want cleared", state.LoadError)
	}
	if !s.Submit(context.Background(), validRegistrationForm()) {
		t.Fatal("submit after recovery must succeed")
	}
}

func TestRegistrationLoadUsesCache(t *testing.T) {
	api := &fakeRegistrationAPI{
		exhibition: exhibition.Exhibition{ID: 7, Active: true},
		products:   []product.Product{{ID: 1}},
	}
	s := NewRegistration(api, 7)

	s.Load(context.Background())
	s.Load(context.Background())

	if api.exhibCalls != 1 || api.productCalls != 1 {
		t.Fatalf("exhibCalls=%d productCalls=%d, want 1/1", api.exhibCalls, api.productCalls)
	}
}

func TestRegistrationSubmitRequiredFieldsBlockNetwork(t *testing.T) {
	cases := []struct {
		name  string
		mut   func(f *RegistrationForm)
		field string
	}{
		{"empty name", func(f *RegistrationForm) { f.Name = "" }, "name"},
		{"bad email", func(f *RegistrationForm) { f.Email = "nope" }, "email"},
		{"empty phone", func(f *RegistrationForm) { f.Phone = "" }, "phone"},
		{"no consent", func(f *RegistrationForm) { f.Consent = false }, "consent"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			api := &fakeRegistrationAPI{exhibition: exhibition.Exhibition{ID: 7, Active: true}}
			s := NewRegistration(api, 7)
			s.Load(context.Background())

			form := validRegistrationForm()
			tc.mut(&form)
			if s.Submit(context.Background(), form) {
				t.Fatal("submit should fail")
			}
			if api.creates != 0 {
				t.Fatalf("creates = %d, want 0", api.creates)
			}

			state := s.State()
			found := false
			for _, f := range state.FieldErrors {
				if f == tc.field {
					found = true
				}
			}
			if !found {
				t.Fatalf("field errors = %v, want %q flagged", state.FieldErrors, tc.field)
			}
		})
	}
}

func TestRegistrationSubmitSuccessResetsAndShowsBanner(t *testing.T) {
	api := &fakeRegistrationAPI{exhibition: exhibition.Exhibition{ID: 7, Active: true}}
	var sent visitor.Visitor
	api.createFn = func(ctx context.Context, v visitor.Visitor) (visitor.CreateResponse, error) {
		sent = v
		return visitor.CreateResponse{Visitor: v, EmailSent: true}, nil
	}

	s := NewRegistration(api, 7)
	s.BannerTTL = 30 * time.Millisecond
	s.Load(context.Background())

	form := validRegistrationForm()
	form.CompanyName = "Rao Industries"
	form.ProductIDs = []int64{1, 2}
	if !s.Submit(context.Background(), form) {
		t.Fatal("submit should succeed")
	}

	if sent.ExhibitionID != 7 {
		t.Fatalf("payload exhibitionId = %d, want the route's exhibition", sent.ExhibitionID)
	}
	if len(sent.ProductIDs) != 2 {
		t.Fatalf("payload productIds = %v, want both selections", sent.ProductIDs)
	}

	state := s.State()
	if !state.SuccessShown {
		t.Fatal("success banner should be visible")
	}
	if state.Form.Name != "" || state.Form.CompanyName != "" {
		t.Fatalf("form = %+v, want fields reset", state.Form)
	}

	deadline := time.After(time.Second)
	for s.State().SuccessShown {
		select {
		case <-deadline:
			t.Fatal("banner never auto-hid")
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestRegistrationSubmitFailureKeepsValues(t *testing.T) {
	api := &fakeRegistrationAPI{exhibition: exhibition.Exhibition{ID: 7, Active: true}}
	api.createFn = func(ctx context.Context, v visitor.Visitor) (visitor.CreateResponse, error) {
		return visitor.CreateResponse{}, errors.New("backend down")
	}

	s := NewRegistration(api, 7)
	s.Load(context.Background())

	form := validRegistrationForm()
	if s.Submit(context.Background(), form) {
		t.Fatal("submit should fail")
	}

	state := s.State()
	if state.Phase != RegistrationReady {
		t.Fatalf("phase = %q, want ready so the visitor can retry", state.Phase)
	}
	if state.Form.Name != form.Name {
		t.Fatal("a failed submit must keep the entered values")
	}
	if state.SubmitError == "" {
		t.Fatal("submit error message should be set")
	}
	if state.SuccessShown {
		t.Fatal("no banner on failure")
	}
}
