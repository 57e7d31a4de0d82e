package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukkaniai/dukkani-ai-be/internal/modules/store/models"
)

type fakeStudioAI struct {
	text     string
	textErr  error
	jsonOut  interface{}
	jsonErr  error
	image    string
	imageErr error

	textCalls  int
	jsonCalls  int
	imageCalls int
}

func (f *fakeStudioAI) GenerateText(ctx context.Context, prompt string) (string, error) {
	f.textCalls++
	return f.text, f.textErr
}

func (f *fakeStudioAI) GenerateJSON(ctx context.Context, prompt string, out interface{}) error {
	f.jsonCalls++
	if f.jsonErr != nil {
		return f.jsonErr
	}
	raw, err := json.Marshal(f.jsonOut)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

func (f *fakeStudioAI) GenerateImage(ctx context.Context, prompt string) (string, error) {
	f.imageCalls++
	return f.image, f.imageErr
}

type memProductRepo struct {
	products  []*models.Product
	createErr error
	updates   int
}

func (r *memProductRepo) Create(product *models.Product) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.products = append(r.products, product)
	return nil
}

func (r *memProductRepo) GetByID(id string) (*models.Product, error) {
	return nil, errors.New("not found")
}

func (r *memProductRepo) GetLatest() (*models.Product, error) {
	if len(r.products) == 0 {
		return nil, errors.New("no products")
	}
	return r.products[len(r.products)-1], nil
}

func (r *memProductRepo) Update(product *models.Product) error {
	r.updates++
	return nil
}

func (r *memProductRepo) List(limit int) ([]models.Product, error) { return nil, nil }

func (r *memProductRepo) Count() (int64, error) { return int64(len(r.products)), nil }

func TestGenerateRequiresName(t *testing.T) {
	svc := NewStudioService(&fakeStudioAI{}, &memProductRepo{})

	_, err := svc.Generate(context.Background(), &models.GenerateProductRequest{Name: "  "})
	assert.ErrorIs(t, err, ErrProductNameRequired)
}

func TestGenerateHappyPath(t *testing.T) {
	ai := &fakeStudioAI{text: "A great lamp.\n", image: "aW1n"}
	repo := &memProductRepo{}
	svc := NewStudioService(ai, repo)

	product, err := svc.Generate(context.Background(), &models.GenerateProductRequest{Name: "Desk Lamp"})
	require.NoError(t, err)

	assert.Equal(t, "Desk Lamp", product.Name)
	assert.Equal(t, "General", product.Category)
	assert.Equal(t, "A great lamp.", product.Description)
	assert.True(t, strings.HasPrefix(product.ImageURL, "data:image/png;base64,"))
	require.Len(t, repo.products, 1)
	assert.Equal(t, product, svc.Current())
	assert.Equal(t, "Desk Lamp", svc.Draft().Name)
}

func TestGenerateDescriptionFailureAborts(t *testing.T) {
	ai := &fakeStudioAI{textErr: errors.New("quota"), image: "aW1n"}
	repo := &memProductRepo{}
	svc := NewStudioService(ai, repo)

	_, err := svc.Generate(context.Background(), &models.GenerateProductRequest{Name: "Lamp"})
	assert.Error(t, err)
	assert.Empty(t, repo.products)
	assert.Nil(t, svc.Current())
}

func TestGenerateImageFailureUsesPlaceholder(t *testing.T) {
	ai := &fakeStudioAI{text: "desc", imageErr: errors.New("no image")}
	svc := NewStudioService(ai, &memProductRepo{})

	product, err := svc.Generate(context.Background(), &models.GenerateProductRequest{Name: "Lamp"})
	require.NoError(t, err)
	assert.Equal(t, models.PlaceholderImageURL, product.ImageURL)
}

func TestGenerateEmptyImageUsesPlaceholder(t *testing.T) {
	ai := &fakeStudioAI{text: "desc", image: ""}
	svc := NewStudioService(ai, &memProductRepo{})

	product, err := svc.Generate(context.Background(), &models.GenerateProductRequest{Name: "Lamp"})
	require.NoError(t, err)
	assert.Equal(t, models.PlaceholderImageURL, product.ImageURL)
}

func TestAdCopyCachesPerPlatform(t *testing.T) {
	ai := &fakeStudioAI{text: "Buy now! #deal"}
	svc := NewStudioService(ai, &memProductRepo{})

	_, err := svc.Generate(context.Background(), &models.GenerateProductRequest{Name: "Lamp"})
	require.NoError(t, err)
	generateCalls := ai.textCalls

	first, err := svc.AdCopy(context.Background(), "Facebook")
	require.NoError(t, err)
	assert.False(t, first.Cached)

	second, err := svc.AdCopy(context.Background(), "Instagram")
	require.NoError(t, err)
	assert.False(t, second.Cached)

	third, err := svc.AdCopy(context.Background(), "Facebook")
	require.NoError(t, err)
	assert.True(t, third.Cached)
	assert.Equal(t, first.Copy, third.Copy)

	// Two distinct platforms, two AI calls, the repeat served from cache.
	assert.Equal(t, generateCalls+2, ai.textCalls)
}

func TestAdCopyUnknownPlatform(t *testing.T) {
	svc := NewStudioService(&fakeStudioAI{}, &memProductRepo{})

	_, err := svc.AdCopy(context.Background(), "MySpace")
	assert.ErrorIs(t, err, ErrUnknownPlatform)
}

func TestAdCopyWithoutProduct(t *testing.T) {
	svc := NewStudioService(&fakeStudioAI{}, &memProductRepo{})

	_, err := svc.AdCopy(context.Background(), "Facebook")
	assert.ErrorIs(t, err, ErrNoGeneratedProduct)
}

func TestSEOCachedAfterFirstCall(t *testing.T) {
	ai := &fakeStudioAI{
		text: "desc",
		jsonOut: models.SEOData{
			MetaTitle:       "Lamp | Best Price",
			MetaDescription: "A lamp worth buying.",
			Keywords:        "lamp, desk",
		},
	}
	svc := NewStudioService(ai, &memProductRepo{})

	_, err := svc.Generate(context.Background(), &models.GenerateProductRequest{Name: "Lamp"})
	require.NoError(t, err)

	first, err := svc.SEO(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Lamp | Best Price", first.MetaTitle)

	second, err := svc.SEO(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, ai.jsonCalls)
}

func TestImportFillsDraft(t *testing.T) {
	ai := &fakeStudioAI{
		jsonOut: models.ImportResult{
			SuggestedName:     "Wireless Earbuds Pro",
			Category:          "Electronics",
			EstimatedPriceMAD: 249,
		},
	}
	svc := NewStudioService(ai, &memProductRepo{})

	result, err := svc.Import(context.Background(), &models.ImportRequest{RawText: "some aliexpress listing"})
	require.NoError(t, err)
	assert.Equal(t, "Wireless Earbuds Pro", result.SuggestedName)

	draft := svc.Draft()
	assert.Equal(t, "Wireless Earbuds Pro", draft.Name)
	assert.Equal(t, "Electronics", draft.Category)
	assert.Empty(t, draft.RawImport)
}

func TestImportFailureLeavesDraftName(t *testing.T) {
	ai := &fakeStudioAI{jsonErr: errors.New("malformed json")}
	svc := NewStudioService(ai, &memProductRepo{})

	_, err := svc.Import(context.Background(), &models.ImportRequest{RawText: "garbage"})
	assert.Error(t, err)
	assert.Empty(t, svc.Draft().Name)
}

func TestImportEmptyText(t *testing.T) {
	svc := NewStudioService(&fakeStudioAI{}, &memProductRepo{})

	_, err := svc.Import(context.Background(), &models.ImportRequest{RawText: "   "})
	assert.ErrorIs(t, err, ErrEmptyImportText)
}

func TestProfit(t *testing.T) {
	svc := NewStudioService(&fakeStudioAI{}, &memProductRepo{})

	tests := []struct {
		name       string
		cost, sell float64
		profit     float64
		margin     float64
	}{
		{"typical", 50, 100, 50, 50},
		{"loss", 120, 100, -20, -20},
		{"zero sell price", 50, 0, -50, 0},
		{"free cost", 0, 80, 80, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := svc.Profit(&models.ProfitRequest{Cost: tt.cost, Sell: tt.sell})
			assert.Equal(t, tt.profit, result.Profit)
			assert.Equal(t, tt.margin, result.Margin)
		})
	}
}
