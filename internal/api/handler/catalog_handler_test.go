package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/velora/storefront-admin/internal/core/domain"
	"github.com/velora/storefront-admin/internal/core/ports"
)

// stubCatalogService implements only the methods under test; the embedded
// interface panics on anything else.
type stubCatalogService struct {
	ports.CatalogService
	updatedCode string
	updatedIn   *ports.PostcodeInput
}

func (s *stubCatalogService) UpdatePostcode(_ context.Context, code string, in ports.PostcodeInput) (*domain.Postcode, error) {
	s.updatedCode = code
	s.updatedIn = &in
	return &domain.Postcode{ID: "pc_1", Code: in.Code, City: in.City, IsServiceable: in.IsServiceable}, nil
}

func (s *stubCatalogService) GetCarousel(_ context.Context, id string) (*domain.Carousel, error) {
	if id != "car_1" {
		return nil, domain.ErrCarouselNotFound
	}
	return &domain.Carousel{ID: "car_1", Title: "Sale", ImageURL: "https://cdn/x.png"}, nil
}

func performValidated(h echo.HandlerFunc, method, body, paramName, paramValue string) (*httptest.ResponseRecorder, error) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if paramName != "" {
		c.SetParamNames(paramName)
		c.SetParamValues(paramValue)
	}
	return rec, h(c)
}

func TestCatalogHandler_UpdatePostcode_RejectsMissingCode(t *testing.T) {
	svc := &stubCatalogService{}
	h := NewCatalogHandler(svc)

	_, err := performValidated(h.UpdatePostcode, http.MethodPut, `{"city": "Brisbane"}`, "code", "4000")
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("a body without a code must fail validation, got %v", err)
	}
	if svc.updatedIn != nil {
		t.Fatalf("service must not be called for an invalid body")
	}
}

func TestCatalogHandler_UpdatePostcode_Success(t *testing.T) {
	svc := &stubCatalogService{}
	h := NewCatalogHandler(svc)

	rec, err := performValidated(h.UpdatePostcode, http.MethodPut, `{"code": "4000", "city": "Brisbane", "is_serviceable": true}`, "code", "4000")
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if svc.updatedCode != "4000" {
		t.Fatalf("path code not forwarded, got %q", svc.updatedCode)
	}
	if svc.updatedIn == nil || !svc.updatedIn.IsServiceable {
		t.Fatalf("body not forwarded: %+v", svc.updatedIn)
	}
}

func TestCatalogHandler_GetCarousel(t *testing.T) {
	h := NewCatalogHandler(&stubCatalogService{})

	rec, err := performValidated(h.GetCarousel, http.MethodGet, "", "id", "car_1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	env := decodeEnvelope(t, rec)
	if !env.Success || env.Message != "Carousel fetched" {
		t.Fatalf("unexpected envelope: %+v", env)
	}

	_, err = performValidated(h.GetCarousel, http.MethodGet, "", "id", "missing")
	if !errors.Is(err, domain.ErrCarouselNotFound) {
		t.Fatalf("expected carousel-not-found to propagate, got %v", err)
	}
}
