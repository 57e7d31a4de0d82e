package services

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/dukkaniai/dukkani-ai-be/internal/modules/store/models"
	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

const (
	// The buyer notice fires every 10 seconds and stays visible for 4.
	buyerNoticeSchedule = "*/10 * * * * *"
	buyerNoticeVisible  = 4 * time.Second
)

var (
	ErrSessionNotFound = errors.New("preview session not found")
	ErrThemeNotFound   = errors.New("theme preset not found")
	ErrUnknownProduct  = errors.New("unknown catalog product")
)

// PreviewSession is the ephemeral state of one storefront preview. Nothing
// here touches an external service or survives a restart.
type PreviewSession struct {
	ID        string            `json:"id"`
	StoreName string            `json:"store_name"`
	Theme     string            `json:"theme"`
	Cart      []models.CartItem `json:"cart"`
	CreatedAt time.Time         `json:"created_at"`
}

// SessionState is the session plus derived values handed to the renderer.
type SessionState struct {
	PreviewSession
	CartTotal float64             `json:"cart_total"`
	Notice    *models.BuyerNotice `json:"notice,omitempty"`
}

// StorefrontService renders the simulated storefront: static theme presets,
// a mock catalog and purely local shopping interactions.
type StorefrontService struct {
	catalog []models.MockProduct

	mu       sync.RWMutex
	sessions map[string]*PreviewSession

	noticeMu    sync.Mutex
	notice      *models.BuyerNotice
	noticeUntil time.Time

	cron *cron.Cron
}

func NewStorefrontService() *StorefrontService {
	return &StorefrontService{
		catalog:  mockProducts(),
		sessions: make(map[string]*PreviewSession),
		cron:     cron.New(cron.WithSeconds()),
	}
}

// Start begins the recurring buyer notice.
func (s *StorefrontService) Start() error {
	_, err := s.cron.AddFunc(buyerNoticeSchedule, s.rotateNotice)
	if err != nil {
		return fmt.Errorf("failed to schedule buyer notice: %w", err)
	}
	s.cron.Start()
	return nil
}

// Stop halts the buyer notice schedule.
func (s *StorefrontService) Stop() {
	s.cron.Stop()
}

func (s *StorefrontService) rotateNotice() {
	notice := buyerNotices[rand.Intn(len(buyerNotices))]

	s.noticeMu.Lock()
	s.notice = &notice
	s.noticeUntil = time.Now().Add(buyerNoticeVisible)
	s.noticeMu.Unlock()
}

// CurrentNotice returns the active buyer notice or nil once it expired.
// Decorative only: independent from any cart or order state.
func (s *StorefrontService) CurrentNotice() *models.BuyerNotice {
	s.noticeMu.Lock()
	defer s.noticeMu.Unlock()
	if s.notice == nil || time.Now().After(s.noticeUntil) {
		return nil
	}
	return s.notice
}

// Themes returns the preset catalog.
func (s *StorefrontService) Themes() []models.ThemePreset {
	out := make([]models.ThemePreset, len(themePresets))
	copy(out, themePresets)
	return out
}

// ThemeByID looks up one preset.
func (s *StorefrontService) ThemeByID(id string) (*models.ThemePreset, error) {
	for _, theme := range themePresets {
		if theme.ID == id {
			t := theme
			return &t, nil
		}
	}
	return nil, ErrThemeNotFound
}

// Products returns the mock catalog.
func (s *StorefrontService) Products() []models.MockProduct {
	out := make([]models.MockProduct, len(s.catalog))
	copy(out, s.catalog)
	return out
}

// Search filters the mock catalog by name, case-insensitive.
func (s *StorefrontService) Search(query string) []models.MockProduct {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return s.Products()
	}

	var out []models.MockProduct
	for _, p := range s.catalog {
		if strings.Contains(strings.ToLower(p.Name), query) {
			out = append(out, p)
		}
	}
	return out
}

// ReviewsFor generates five mock reviews for a niche. Theme IDs are accepted
// and resolved to their niche.
func (s *StorefrontService) ReviewsFor(niche string) []models.MockReview {
	if theme, err := s.ThemeByID(niche); err == nil {
		niche = theme.Niche
	}
	pool := append(append([]string{}, nicheReviews[niche]...), genericReviews...)

	reviews := make([]models.MockReview, 5)
	for i := range reviews {
		reviews[i] = models.MockReview{
			ID:    i,
			Name:  reviewerNames[i%len(reviewerNames)],
			Text:  pool[i%len(pool)],
			Stars: 5,
			Date:  fmt.Sprintf("%d days ago", rand.Intn(5)+1),
		}
	}
	return reviews
}

// CreateSession opens a new preview session with the default theme.
func (s *StorefrontService) CreateSession(storeName string) *SessionState {
	if storeName == "" {
		storeName = "My Awesome Store"
	}

	session := &PreviewSession{
		ID:        uuid.NewString(),
		StoreName: storeName,
		Theme:     themePresets[0].ID,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	return s.state(session)
}

// Session returns the current state of a preview session.
func (s *StorefrontService) Session(id string) (*SessionState, error) {
	session, err := s.get(id)
	if err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state(session), nil
}

// SelectTheme switches the active preset of a session.
func (s *StorefrontService) SelectTheme(sessionID, themeID string) (*SessionState, error) {
	if _, err := s.ThemeByID(themeID); err != nil {
		return nil, err
	}
	session, err := s.get(sessionID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	session.Theme = themeID
	return s.state(session), nil
}

// AddToCart appends a catalog product to the session cart.
func (s *StorefrontService) AddToCart(sessionID string, req *models.AddToCartRequest) (*SessionState, error) {
	if req.ProductID < 0 || req.ProductID >= len(s.catalog) {
		return nil, ErrUnknownProduct
	}
	if req.Quantity <= 0 {
		req.Quantity = 1
	}
	session, err := s.get(sessionID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	session.Cart = append(session.Cart, models.CartItem{
		Product:  s.catalog[req.ProductID],
		Quantity: req.Quantity,
	})
	return s.state(session), nil
}

// RemoveFromCart drops a cart line by index.
func (s *StorefrontService) RemoveFromCart(sessionID string, index int) (*SessionState, error) {
	session, err := s.get(sessionID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(session.Cart) {
		return nil, fmt.Errorf("cart index out of range")
	}
	session.Cart = append(session.Cart[:index], session.Cart[index+1:]...)
	return s.state(session), nil
}

func (s *StorefrontService) get(id string) (*PreviewSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// state must be called with at least a read hold on s.mu, or with a session
// not yet published.
func (s *StorefrontService) state(session *PreviewSession) *SessionState {
	cart := make([]models.CartItem, len(session.Cart))
	copy(cart, session.Cart)

	total := 0.0
	for _, item := range cart {
		total += item.Product.Price * float64(item.Quantity)
	}

	return &SessionState{
		PreviewSession: PreviewSession{
			ID:        session.ID,
			StoreName: session.StoreName,
			Theme:     session.Theme,
			Cart:      cart,
			CreatedAt: session.CreatedAt,
		},
		CartTotal: total,
		Notice:    s.CurrentNotice(),
	}
}
