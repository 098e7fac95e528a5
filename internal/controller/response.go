package controller

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"logsearch-gateway/internal/apperror"
	"logsearch-gateway/internal/model"
)

// respondError writes err with the status and kind tag of its error kind.
func respondError(ctx *gin.Context, err error) {
	status := apperror.StatusOf(err)
	kind := apperror.KindOf(err)
	if status >= 500 {
		log.Error().Err(err).Str("path", ctx.FullPath()).Str("kind", string(kind)).Msg("Request failed")
	} else {
		log.Warn().Err(err).Str("path", ctx.FullPath()).Msg("Request rejected")
	}
	ctx.JSON(status, model.NewResponse(apperror.MessageOf(err), string(kind)))
}
