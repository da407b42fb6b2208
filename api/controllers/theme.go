package controllers

import (
	"context"
	"net/http"

	"github.com/fmcommerce/storefront/api/responses"
	"github.com/fmcommerce/storefront/internal/theme"
	pkgerrors "github.com/fmcommerce/storefront/pkg/errors"
	"github.com/fmcommerce/storefront/pkg/logger"
)

// ThemeStore is the store surface the theme handlers dispatch into.
type ThemeStore interface {
	Current() theme.Theme
	Toggle(ctx context.Context) theme.Theme
}

// ThemeFetch returns the active theme preference.
func ThemeFetch(store ThemeStore, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "theme store unavailable"))
			return
		}
		responses.WriteSuccess(w, map[string]string{"theme": string(store.Current())})
	}
}

// ThemeToggle flips the theme and returns the new value.
func ThemeToggle(store ThemeStore, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "theme store unavailable"))
			return
		}
		responses.WriteSuccess(w, map[string]string{"theme": string(store.Toggle(r.Context()))})
	}
}
