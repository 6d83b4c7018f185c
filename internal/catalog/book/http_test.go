// Copyright (c) 2026 Kasane. All rights reserved.

package book

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kasaneapp/kasane/internal/platform/realm"
)

func newTestHandler(repo *fakeRepo) *Handler {
	return NewHandler(NewService(repo, discardLogger()), realm.NewClassifier(nil))
}

/*
TestListCatalog_OrderByParameter verifies the sort key travels on the
orderBy query parameter and reaches the fetcher resolved.
*/
func TestListCatalog_OrderByParameter(t *testing.T) {
	repo := &fakeRepo{}
	handler := newTestHandler(repo)

	request := httptest.NewRequest(http.MethodGet, "/api/v1/books?orderBy=-views", nil)
	recorder := httptest.NewRecorder()
	handler.listCatalog(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	require.Equal(t, 1, repo.fetchCalls)
	assert.Equal(t, Order{Key: OrderViews, Desc: true}, repo.lastQuery.Order)
}

/*
TestListCatalog_UnknownOrderByFallsBack verifies an unrecognised sort key
degrades to the default ordering instead of failing the request.
*/
func TestListCatalog_UnknownOrderByFallsBack(t *testing.T) {
	repo := &fakeRepo{}
	handler := newTestHandler(repo)

	request := httptest.NewRequest(http.MethodGet, "/api/v1/books?orderBy=rating", nil)
	recorder := httptest.NewRecorder()
	handler.listCatalog(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, DefaultOrder, repo.lastQuery.Order)
}

/*
TestListCatalog_OmittedOrderByDefaults verifies a request without any sort
parameter gets the default ordering.
*/
func TestListCatalog_OmittedOrderByDefaults(t *testing.T) {
	repo := &fakeRepo{}
	handler := newTestHandler(repo)

	request := httptest.NewRequest(http.MethodGet, "/api/v1/books", nil)
	recorder := httptest.NewRecorder()
	handler.listCatalog(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, DefaultOrder, repo.lastQuery.Order)
}
