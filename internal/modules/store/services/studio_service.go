package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/dukkaniai/dukkani-ai-be/internal/core/genai"
	"github.com/dukkaniai/dukkani-ai-be/internal/modules/store/models"
	"github.com/dukkaniai/dukkani-ai-be/internal/modules/store/repositories"
	"github.com/dukkaniai/dukkani-ai-be/internal/shared/utils"
	"gorm.io/datatypes"
)

// AdPlatforms the marketing suite can target.
var AdPlatforms = []string{"Facebook", "Instagram", "TikTok"}

var (
	ErrProductNameRequired = errors.New("product name is required")
	ErrNoGeneratedProduct  = errors.New("generate a product first")
	ErrEmptyImportText     = errors.New("import text is required")
	ErrUnknownPlatform     = errors.New("unknown ad platform")
)

// StudioAI is the slice of the generative AI service the studio needs.
type StudioAI interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	GenerateJSON(ctx context.Context, prompt string, out interface{}) error
	GenerateImage(ctx context.Context, prompt string) (string, error)
}

// ProductDraft mirrors the studio form fields so smart import can fill them.
type ProductDraft struct {
	Name      string `json:"name"`
	Category  string `json:"category"`
	RawImport string `json:"raw_import"`
}

// StudioService turns a short merchant brief into a description, a
// best-effort image and on-demand derivative marketing/SEO content.
type StudioService struct {
	ai          StudioAI
	productRepo repositories.ProductRepo

	mu      sync.Mutex
	current *models.Product
	draft   ProductDraft
}

func NewStudioService(ai StudioAI, productRepo repositories.ProductRepo) *StudioService {
	return &StudioService{
		ai:          ai,
		productRepo: productRepo,
	}
}

// Generate runs one generation pass. Description and image are requested
// concurrently; a missing image falls back to the fixed placeholder so the
// preview never shows an empty state. The previous product and its cached
// derivative content are replaced wholesale.
func (s *StudioService) Generate(ctx context.Context, req *models.GenerateProductRequest) (*models.Product, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrProductNameRequired
	}
	if req.Category == "" {
		req.Category = "General"
	}
	if req.Tone == "" {
		req.Tone = "Persuasive"
	}
	if req.Language == "" {
		req.Language = "English"
	}

	var (
		wg          sync.WaitGroup
		description string
		descErr     error
		imageB64    string
		imageErr    error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		description, descErr = s.ai.GenerateText(ctx,
			genai.BuildDescriptionPrompt(req.Name, req.Category, req.Tone, req.Language))
	}()
	go func() {
		defer wg.Done()
		imageB64, imageErr = s.ai.GenerateImage(ctx,
			genai.BuildImagePrompt(req.Name, req.Category))
	}()
	wg.Wait()

	if descErr != nil {
		return nil, fmt.Errorf("failed to generate description: %w", descErr)
	}

	imageURL := models.PlaceholderImageURL
	if imageErr != nil {
		utils.LogWarn("image generation failed, using placeholder", map[string]interface{}{
			"product": req.Name, "error": imageErr.Error(),
		})
	} else if imageB64 != "" {
		imageURL = "data:image/png;base64," + imageB64
	}

	product := &models.Product{
		Name:        req.Name,
		Category:    req.Category,
		Tone:        req.Tone,
		Language:    req.Language,
		Description: strings.TrimSpace(description),
		ImageURL:    imageURL,
	}

	if err := s.productRepo.Create(product); err != nil {
		return nil, fmt.Errorf("failed to save product: %w", err)
	}

	s.mu.Lock()
	s.current = product
	s.draft.Name = req.Name
	s.draft.Category = req.Category
	s.mu.Unlock()

	return product, nil
}

// AdCopy returns marketing copy for one platform, reusing the cached caption
// when the platform was requested before.
func (s *StudioService) AdCopy(ctx context.Context, platform string) (*models.AdCopyResponse, error) {
	if !validPlatform(platform) {
		return nil, fmt.Errorf("%w %q", ErrUnknownPlatform, platform)
	}

	s.mu.Lock()
	product := s.current
	s.mu.Unlock()
	if product == nil {
		return nil, ErrNoGeneratedProduct
	}

	cache := decodeCopyCache(product.MarketingCopy)
	if cached, ok := cache[platform]; ok {
		return &models.AdCopyResponse{Platform: platform, Copy: cached, Cached: true}, nil
	}

	copyText, err := s.ai.GenerateText(ctx,
		genai.BuildAdCopyPrompt(product.Name, platform, product.Language))
	if err != nil {
		return nil, fmt.Errorf("failed to generate ad copy: %w", err)
	}

	cache[platform] = strings.TrimSpace(copyText)
	if err := s.storeCopyCache(product, cache); err != nil {
		// Cache persistence is best effort; the caption is still returned.
		utils.LogWarn("failed to persist ad copy cache", map[string]interface{}{
			"product_id": product.ID, "error": err.Error(),
		})
	}

	return &models.AdCopyResponse{Platform: platform, Copy: cache[platform]}, nil
}

// SEO returns metadata for the last generated product, cached after the
// first successful call.
func (s *StudioService) SEO(ctx context.Context) (*models.SEOData, error) {
	s.mu.Lock()
	product := s.current
	s.mu.Unlock()
	if product == nil {
		return nil, ErrNoGeneratedProduct
	}

	if len(product.SEO) > 0 {
		var cached models.SEOData
		if err := json.Unmarshal(product.SEO, &cached); err == nil && cached.MetaTitle != "" {
			return &cached, nil
		}
	}

	var seo models.SEOData
	if err := s.ai.GenerateJSON(ctx,
		genai.BuildSEOPrompt(product.Name, product.Description), &seo); err != nil {
		return nil, fmt.Errorf("failed to generate SEO metadata: %w", err)
	}

	if raw, err := json.Marshal(seo); err == nil {
		s.mu.Lock()
		product.SEO = datatypes.JSON(raw)
		s.mu.Unlock()
		if err := s.productRepo.Update(product); err != nil {
			utils.LogWarn("failed to persist SEO cache", map[string]interface{}{
				"product_id": product.ID, "error": err.Error(),
			})
		}
	}

	return &seo, nil
}

// Import extracts structured fields from unstructured pasted text. A
// malformed or failed extraction aborts the import and leaves the draft
// untouched; on success the name/category fields are updated and the raw
// import text is cleared.
func (s *StudioService) Import(ctx context.Context, req *models.ImportRequest) (*models.ImportResult, error) {
	if strings.TrimSpace(req.RawText) == "" {
		return nil, ErrEmptyImportText
	}

	s.mu.Lock()
	s.draft.RawImport = req.RawText
	s.mu.Unlock()

	var result models.ImportResult
	if err := s.ai.GenerateJSON(ctx, genai.BuildImportPrompt(req.RawText), &result); err != nil {
		return nil, fmt.Errorf("failed to analyze import text: %w", err)
	}
	if result.Category == "" {
		result.Category = "General"
	}

	s.mu.Lock()
	s.draft.Name = result.SuggestedName
	s.draft.Category = result.Category
	s.draft.RawImport = ""
	s.mu.Unlock()

	return &result, nil
}

// Profit derives profit and margin synchronously from the two inputs.
func (s *StudioService) Profit(req *models.ProfitRequest) *models.ProfitResult {
	profit := req.Sell - req.Cost
	margin := 0.0
	if req.Sell > 0 {
		margin = profit / req.Sell * 100
	}
	return &models.ProfitResult{Profit: profit, Margin: margin}
}

// Current returns the last generated product, if any.
func (s *StudioService) Current() *models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Draft returns the current form field state.
func (s *StudioService) Draft() ProductDraft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

func (s *StudioService) storeCopyCache(product *models.Product, cache map[string]string) error {
	raw, err := json.Marshal(cache)
	if err != nil {
		return err
	}
	s.mu.Lock()
	product.MarketingCopy = datatypes.JSON(raw)
	s.mu.Unlock()
	return s.productRepo.Update(product)
}

func decodeCopyCache(raw datatypes.JSON) map[string]string {
	cache := make(map[string]string)
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &cache)
	}
	return cache
}

func validPlatform(platform string) bool {
	for _, p := range AdPlatforms {
		if p == platform {
			return true
		}
	}
	return false
}
