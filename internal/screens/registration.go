package screens

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/techexpo/console/internal/cache"
	"github.com/techexpo/console/internal/domain/exhibition"
	"github.com/techexpo/console/internal/domain/product"
	"github.com/techexpo/console/internal/domain/visitor"
)

// RegistrationPhase tracks the public form's lifecycle.
type RegistrationPhase string

const (
	RegistrationLoading    RegistrationPhase = "loading"
	RegistrationReady      RegistrationPhase = "ready"
	RegistrationSubmitting RegistrationPhase = "submitting"
	RegistrationError      RegistrationPhase = "error"
)

type RegistrationAPI interface {
	PublicExhibition(ctx context.Context, id int64) (exhibition.Exhibition, error)
	PublicProducts(ctx context.Context) ([]product.Product, error)
	CreateVisitor(ctx context.Context, v visitor.Visitor) (visitor.CreateResponse, error)
}

// RegistrationForm is the public self-registration payload. Only the
// contact block and consent are mandatory; the profiling sections are
// free to stay empty.
type RegistrationForm struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone" binding:"required"`
	CompanyName string `json:"companyName"`
	Consent     bool   `json:"consent" binding:"required"`

	Designation       string   `json:"designation"`
	CityState         string   `json:"cityState"`
	CompanyType       []string `json:"companyType"`
	CompanyTypeOther  string   `json:"companyTypeOther"`
	Industry          []string `json:"industry"`
	IndustryOther     string   `json:"industryOther"`
	CompanySize       []string `json:"companySize"`
	InterestAreas     []string `json:"interestAreas"`
	Solutions         []string `json:"solutions"`
	SolutionsOther    string   `json:"solutionsOther"`
	Timeline          []string `json:"timeline"`
	Budget            []string `json:"budget"`
	FollowUpMode      []string `json:"followUpMode"`
	BestTimeToContact []string `json:"bestTimeToContact"`
	AdditionalNotes   string   `json:"additionalNotes"`

	ProductIDs []int64 `json:"productIds"`
}

// Registration is the /visit/:exhibitionId form. Unlike the admin
// screens it is anonymous, caches its reference data, and shows a
// success banner that clears itself after BannerTTL.
type Registration struct {
	mu       sync.Mutex
	api      RegistrationAPI
	products *cache.Cache[[]product.Product]
	exhibits *cache.Cache[exhibition.Exhibition]

	// BannerTTL is how long the success banner stays up. Zero means
	// the 3 second default.
	BannerTTL time.Duration

	exhibitionID int64
	phase        RegistrationPhase
	loadErr      string
	exhibition   exhibition.Exhibition
	list         []product.Product
	form         RegistrationForm
	fieldErrors  []string
	submitErr    string
	successShown bool
	bannerTimer  *time.Timer
}

func NewRegistration(api RegistrationAPI, exhibitionID int64) *Registration {
	return &Registration{
		api:          api,
		products:     cache.New[[]product.Product](30 * time.Second),
		exhibits:     cache.New[exhibition.Exhibition](30 * time.Second),
		exhibitionID: exhibitionID,
		phase:        RegistrationLoading,
	}
}

// Load fetches the exhibition and the public product catalog in
// parallel. Either failing puts the form in an error state for the
// current mount; a later Load retries, so a recovered backend brings
// the form back.
func (s *Registration) Load(ctx context.Context) {
	exKey := fmt.Sprintf("exhibition:%d", s.exhibitionID)

	var (
		ex    exhibition.Exhibition
		prods []product.Product
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if cached, ok := s.exhibits.Get(exKey); ok {
			ex = cached
			return nil
		}
		got, err := s.api.PublicExhibition(gctx, s.exhibitionID)
		if err != nil {
			return err
		}
		s.exhibits.Set(exKey, got)
		ex = got
		return nil
	})
	g.Go(func() error {
		if cached, ok := s.products.Get("public"); ok {
			prods = cached
			return nil
		}
		got, err := s.api.PublicProducts(gctx)
		if err != nil {
			return err
		}
		s.products.Set("public", got)
		prods = got
		return nil
	})

	err := g.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.phase = RegistrationError
		s.loadErr = serverMessage(err, "This exhibition is not available")
		return
	}
	s.exhibition = ex
	s.list = prods
	s.loadErr = ""
	s.phase = RegistrationReady
}

func (s *Registration) SetForm(form RegistrationForm) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form = form
}

// Submit posts the registration. Invalid fields never reach the
// network. On success the fields reset and a banner shows; on failure
// the entered values survive so the visitor can correct and retry.
func (s *Registration) Submit(ctx context.Context, form RegistrationForm) bool {
	s.mu.Lock()
	if s.phase != RegistrationReady {
		s.mu.Unlock()
		return false
	}
	s.form = form
	if fields := invalidFields(form); fields != nil {
		s.fieldErrors = fields
		s.mu.Unlock()
		return false
	}
	s.fieldErrors = nil
	s.submitErr = ""
	s.phase = RegistrationSubmitting
	exhibitionID := s.exhibitionID
	s.mu.Unlock()

	_, err := s.api.CreateVisitor(ctx, visitor.Visitor{
		Name:              form.Name,
		Email:             form.Email,
		Phone:             form.Phone,
		CompanyName:       form.CompanyName,
		Designation:       form.Designation,
		CityState:         form.CityState,
		CompanyType:       form.CompanyType,
		CompanyTypeOther:  form.CompanyTypeOther,
		Industry:          form.Industry,
		IndustryOther:     form.IndustryOther,
		CompanySize:       form.CompanySize,
		InterestAreas:     form.InterestAreas,
		Solutions:         form.Solutions,
		SolutionsOther:    form.SolutionsOther,
		Timeline:          form.Timeline,
		Budget:            form.Budget,
		FollowUpMode:      form.FollowUpMode,
		BestTimeToContact: form.BestTimeToContact,
		AdditionalNotes:   form.AdditionalNotes,
		Consent:           form.Consent,
		ExhibitionID:      exhibitionID,
		ProductIDs:        form.ProductIDs,
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	s.phase = RegistrationReady
	if err != nil {
		s.submitErr = serverMessage(err, "Registration failed, please try again")
		return false
	}

	s.form = RegistrationForm{}
	s.successShown = true
	if s.bannerTimer != nil {
		s.bannerTimer.Stop()
	}
	ttl := s.BannerTTL
	if ttl <= 0 {
		ttl = 3 * time.Second
	}
	s.bannerTimer = time.AfterFunc(ttl, func() {
		s.mu.Lock()
		s.successShown = false
		s.mu.Unlock()
	})
	return true
}

// RegistrationState is a point-in-time snapshot for rendering.
type RegistrationState struct {
	Phase        RegistrationPhase     `json:"phase"`
	LoadError    string                `json:"loadError,omitempty"`
	Exhibition   exhibition.Exhibition `json:"exhibition"`
	Products     []product.Product     `json:"products"`
	Form         RegistrationForm      `json:"form"`
	FieldErrors  []string              `json:"fieldErrors,omitempty"`
	SubmitError  string                `json:"submitError,omitempty"`
	SuccessShown bool                  `json:"successShown"`
}

func (s *Registration) State() RegistrationState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return RegistrationState{
		Phase:        s.phase,
		LoadError:    s.loadErr,
		Exhibition:   s.exhibition,
		Products:     s.list,
		Form:         s.form,
		FieldErrors:  s.fieldErrors,
		SubmitError:  s.submitErr,
		SuccessShown: s.successShown,
	}
}
