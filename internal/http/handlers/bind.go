package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
)

// BindJSON decodes the request body and answers a 400 with a structured
// reason when the JSON itself is broken. Schema rules are not applied here;
// each variant decides when and how to validate.
func BindJSON(ctx *gin.Context, out interface{}) bool {
	err := ctx.ShouldBindJSON(out)

	if err != nil {
		RespondBadRequest(ctx, "Invalid request body", parseBindError(err))

		return false
	}

	return true
}

func parseBindError(err error) interface{} {
	var syntaxError *json.SyntaxError

	if errors.As(err, &syntaxError) {
		return gin.H{"json": "invalid_json_syntax"}
	}

	var typeError *json.UnmarshalTypeError

	if errors.As(err, &typeError) {
		return gin.H{
			"json":  "invalid_json_type",
			"field": strings.TrimSpace(typeError.Field),
			"want":  fmt.Sprintf("must be of type %s", typeError.Type.String()),
		}
	}

	// final fallback if the error could not be deciphered
	return gin.H{"reason": err.Error()}
}
