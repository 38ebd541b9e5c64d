package repository_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wesley1888/InvenMate/internal/domain/repository"
)

func TestDateToExclusive_IncluyeHorasDelDiaTope(t *testing.T) {
	// DateTo llega como medianoche del día tope (query param YYYY-MM-DD);
	// la cota exclusiva debe dejar dentro los eventos con hora de ese día.
	tope := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	filter := repository.StockInFilter{DateTo: &tope}

	cota := filter.DateToExclusive()
	require.NotNil(t, cota)

	conHora := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	assert.True(t, conHora.Before(*cota),
		"un evento de las 10:00 del día tope queda dentro del rango")

	diaSiguiente := time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC)
	assert.False(t, diaSiguiente.Before(*cota),
		"la medianoche del día siguiente queda fuera")
}

func TestDateToExclusive_NuloSinRango(t *testing.T) {
	inFilter := repository.StockInFilter{}
	assert.Nil(t, inFilter.DateToExclusive())

	outFilter := repository.StockOutFilter{}
	assert.Nil(t, outFilter.DateToExclusive())
}

func TestEndOfDayExclusive_IgnoraLaHora(t *testing.T) {
	// Aunque DateTo llegue con hora, la cota sigue siendo la medianoche
	// del día siguiente.
	conHora := time.Date(2024, 1, 15, 18, 30, 0, 0, time.UTC)
	cota := repository.EndOfDayExclusive(conHora)
	assert.Equal(t, time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC), cota)
}
