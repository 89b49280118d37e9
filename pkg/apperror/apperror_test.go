package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	notFound := NotFound("doctor no encontrado")

	assert.Equal(t, http.StatusNotFound, StatusOf(notFound))
	assert.Equal(t, http.StatusNotFound, StatusOf(fmt.Errorf("resolve blocks: %w", notFound)))
	assert.Equal(t, http.StatusBadRequest, StatusOf(Validation("fecha requerida")))
	assert.Equal(t, http.StatusInternalServerError, StatusOf(errors.New("connection refused")))
	assert.Equal(t, "doctor no encontrado", notFound.Error())
}
