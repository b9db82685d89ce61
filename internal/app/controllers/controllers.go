package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yigit/schoolfm/internal/app/models/dto"
)

// parseIDParam reads a positive integer path parameter. On failure it writes a
// 400 response and returns false.
func parseIDParam(ctx *gin.Context, name, entity string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+entity+" ID").
			WithField(name).
			WithDetails(entity + " ID must be a positive number")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// parseOptionalIDQuery reads an optional positive integer query filter. A
// missing or empty parameter yields nil.
func parseOptionalIDQuery(ctx *gin.Context, name string) (*int64, bool) {
	raw, ok := ctx.GetQuery(name)
	if !ok || raw == "" {
		return nil, true
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name+" filter").
			WithField(name).
			WithDetails(name + " must be a positive number")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return nil, false
	}
	return &id, true
}

func respondList[T any](ctx *gin.Context, items []T) {
	if items == nil {
		items = []T{}
	}
	ctx.JSON(http.StatusOK, dto.ListResponse{Data: items})
}

func respondCreated(ctx *gin.Context, id int64) {
	ctx.JSON(http.StatusCreated, dto.CreatedResponse{ID: id})
}

func respondChanges(ctx *gin.Context, changes int64) {
	ctx.JSON(http.StatusOK, dto.ChangesResponse{Changes: changes})
}
