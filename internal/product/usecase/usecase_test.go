package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	abtestRepo "github.com/abinsights/analytics-service/internal/abtest/repository"
	abtestUC "github.com/abinsights/analytics-service/internal/abtest/usecase"
	landingRepo "github.com/abinsights/analytics-service/internal/landingpage/repository"
	landingUC "github.com/abinsights/analytics-service/internal/landingpage/usecase"
	resultRepo "github.com/abinsights/analytics-service/internal/result/repository"
	resultUC "github.com/abinsights/analytics-service/internal/result/usecase"

	abtestDTO "github.com/abinsights/analytics-service/internal/abtest/dto"
	landingDTO "github.com/abinsights/analytics-service/internal/landingpage/dto"
	resultDTO "github.com/abinsights/analytics-service/internal/result/dto"

	"github.com/abinsights/analytics-service/internal/apperrors"
	"github.com/abinsights/analytics-service/internal/product/dto"
	"github.com/abinsights/analytics-service/internal/product/repository"
	"github.com/abinsights/analytics-service/internal/testutil"
)

func strPtr(s string) *string { return &s }

func i64Ptr(i int64) *int64 { return &i }

func f64Ptr(f float64) *float64 { return &f }

func TestCreateProductAssignsSequentialIDs(t *testing.T) {
	db := testutil.SetupTestDB(t)
	uc := NewProductUseCase(repository.NewPGRepository(db), testutil.Logger())
	ctx := context.Background()

	first, err := uc.CreateProduct(ctx, &dto.CreateProductInput{
		ProductName: strPtr("Widget"),
		Category:    strPtr("Tools"),
		ReleaseDate: strPtr("2024-01-01"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.ProductID)

	second, err := uc.CreateProduct(ctx, &dto.CreateProductInput{
		ProductName: strPtr("Gadget"),
		Category:    strPtr("Tools"),
		ReleaseDate: strPtr("2024-02-01"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.ProductID)
}

func TestCreateProductOptionalFieldsStayNull(t *testing.T) {
	db := testutil.SetupTestDB(t)
	uc := NewProductUseCase(repository.NewPGRepository(db), testutil.Logger())

	p, err := uc.CreateProduct(context.Background(), &dto.CreateProductInput{
		ProductName: strPtr("Widget"),
		Category:    strPtr("Tools"),
		ReleaseDate: strPtr("2024-01-01"),
	})
	require.NoError(t, err)
	assert.Nil(t, p.Description)
	assert.Nil(t, p.LogoURL)

	got, err := uc.GetProduct(context.Background(), p.ProductID)
	require.NoError(t, err)
	assert.Nil(t, got.Description)
	assert.Nil(t, got.LogoURL)
}

func TestCreateProductMissingRequired(t *testing.T) {
	db := testutil.SetupTestDB(t)
	uc := NewProductUseCase(repository.NewPGRepository(db), testutil.Logger())

	_, err := uc.CreateProduct(context.Background(), &dto.CreateProductInput{
		ProductName: strPtr("Widget"),
		Category:    strPtr("Tools"),
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestUpdateProductPartialKeepsOtherFields(t *testing.T) {
	db := testutil.SetupTestDB(t)
	uc := NewProductUseCase(repository.NewPGRepository(db), testutil.Logger())
	ctx := context.Background()

	created, err := uc.CreateProduct(ctx, &dto.CreateProductInput{
		ProductName: strPtr("Widget"),
		Category:    strPtr("Tools"),
		Description: strPtr("A fine widget"),
		ReleaseDate: strPtr("2024-01-01"),
	})
	require.NoError(t, err)

	updated, err := uc.UpdateProduct(ctx, created.ProductID, &dto.UpdateProductInput{
		Category: strPtr("Hardware"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Widget", updated.ProductName)
	assert.Equal(t, "Hardware", updated.Category)
	require.NotNil(t, updated.Description)
	assert.Equal(t, "A fine widget", *updated.Description)
}

// The full ownership tree: deleting the product removes its landing pages,
// its tests, and those tests' results, transitively.
func TestDeleteProductCascades(t *testing.T) {
	db := testutil.SetupTestDB(t)
	log := testutil.Logger()
	ctx := context.Background()

	productUC := NewProductUseCase(repository.NewPGRepository(db), log)
	pageUC := landingUC.NewLandingPageUseCase(landingRepo.NewPGRepository(db), log)
	testUC := abtestUC.NewABTestUseCase(abtestRepo.NewPGRepository(db), log)
	resUC := resultUC.NewResultUseCase(resultRepo.NewPGRepository(db), log)

	p, err := productUC.CreateProduct(ctx, &dto.CreateProductInput{
		ProductName: strPtr("Widget"),
		Category:    strPtr("Tools"),
		ReleaseDate: strPtr("2024-01-01"),
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), p.ProductID)

	lp, err := pageUC.CreateLandingPage(ctx, &landingDTO.CreateLandingPageInput{
		VariantType: strPtr("A"),
		PageURL:     strPtr("http://x/a"),
		ProductID:   i64Ptr(p.ProductID),
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), lp.LandingPageID)

	ab, err := testUC.CreateABTest(ctx, &abtestDTO.CreateABTestInput{
		TestName:      strPtr("Campaign_1"),
		StartDate:     strPtr("2024-01-01"),
		EndDate:       strPtr("2024-02-01"),
		LandingPageID: i64Ptr(lp.LandingPageID),
		ProductID:     i64Ptr(p.ProductID),
	})
	require.NoError(t, err)

	res, err := resUC.CreateResult(ctx, &resultDTO.CreateResultInput{
		ClickThroughRate: f64Ptr(0.12),
		ConversionRate:   f64Ptr(0.05),
		BounceRate:       f64Ptr(0.4),
		TestID:           i64Ptr(ab.TestID),
	})
	require.NoError(t, err)

	require.NoError(t, productUC.DeleteProduct(ctx, p.ProductID))

	_, err = pageUC.GetLandingPage(ctx, lp.LandingPageID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	_, err = testUC.GetABTest(ctx, ab.TestID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	_, err = resUC.GetResult(ctx, res.ResultsID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDeleteProductNotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	uc := NewProductUseCase(repository.NewPGRepository(db), testutil.Logger())

	err := uc.DeleteProduct(context.Background(), 7)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
