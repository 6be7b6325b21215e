package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ParameterSpec declares a required query parameter. Description is shown to
// the caller when the parameter is missing and may be empty.
type ParameterSpec struct {
	Name        string
	Description string
}

func param(name, description string) ParameterSpec {
	return ParameterSpec{Name: name, Description: description}
}

type missingParamsResponse struct {
	Error      string            `json:"error"`
	Parameters []string          `json:"parameters"`
	Info       map[string]string `json:"info"`
}

// requireQueryParams aborts with a 400 listing every declared parameter whose
// key is absent from the query string. A key present with an empty value counts
// as present.
func requireQueryParams(specs ...ParameterSpec) gin.HandlerFunc {
	return func(c *gin.Context) {
		missing := missingQueryParams(c, specs)
		if len(missing) == 0 {
			c.Next()
			return
		}

		resp := missingParamsResponse{
			Error:      MessageMissingParams,
			Parameters: make([]string, 0, len(missing)),
			Info:       make(map[string]string),
		}
		for _, spec := range missing {
			resp.Parameters = append(resp.Parameters, spec.Name)
			if spec.Description != "" {
				resp.Info[spec.Name] = spec.Description
			}
		}
		c.AbortWithStatusJSON(http.StatusBadRequest, resp)
	}
}

func missingQueryParams(c *gin.Context, specs []ParameterSpec) []ParameterSpec {
	query := c.Request.URL.Query()
	var missing []ParameterSpec
	for _, spec := range specs {
		if _, ok := query[spec.Name]; !ok {
			missing = append(missing, spec)
		}
	}
	return missing
}
