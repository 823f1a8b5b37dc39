// Cinelens - Content-Based Movie Recommendation Engine
// Copyright 2026 The Cinelens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinelens/cinelens

package api

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// ListMovies returns a page of the movie catalog.
// @Summary List catalog movies
// @Description Returns catalog movies ordered by id, with offset pagination.
// @Tags Movies
// @Produce json
// @Param limit query int false "Page size" default(100) minimum(1) maximum(500)
// @Param offset query int false "Rows to skip" default(0) minimum(0)
// @Success 200 {object} APIResponse{data=[]recommend.Movie}
// @Failure 400 {object} APIResponse
// @Failure 500 {object} APIResponse
// @Router /api/v1/movies [get]
func (h *Handler) ListMovies(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	q := MoviesQuery{
		Limit:  getIntParam(r, "limit", 100),
		Offset: getIntParam(r, "offset", 0),
	}
	if apiErr := validateRequest(&q); apiErr != nil {
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return
	}

	ctx := r.Context()
	movies, err := h.store.ListMovies(ctx, q.Limit, q.Offset)
	if err != nil {
		rw.DatabaseError(err)
		return
	}

	total, err := h.store.Count(ctx)
	if err != nil {
		rw.DatabaseError(err)
		return
	}

	rw.SuccessWithPagination(movies, &PaginationMeta{
		Total:   total,
		Count:   len(movies),
		Offset:  q.Offset,
		Limit:   q.Limit,
		HasMore: int64(q.Offset+len(movies)) < total,
	})
}

// GetMovie returns one catalog movie by id.
// @Summary Get a catalog movie
// @Description Returns the catalog movie with the given id.
// @Tags Movies
// @Produce json
// @Param id path int true "Movie catalog id"
// @Success 200 {object} APIResponse{data=recommend.Movie}
// @Failure 400 {object} APIResponse
// @Failure 404 {object} APIResponse
// @Failure 500 {object} APIResponse
// @Router /api/v1/movies/{id} [get]
func (h *Handler) GetMovie(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		rw.BadRequest("Movie id must be an integer")
		return
	}

	movie, err := h.store.GetMovie(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			rw.NotFound(fmt.Sprintf("No movie with id %d", id))
			return
		}
		rw.DatabaseError(err)
		return
	}

	rw.Success(movie)
}
