package ledger_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/ledger"
)

// ──────────────────────────────────────────────────────────────────────────────
// ADD dentro de límites
// ──────────────────────────────────────────────────────────────────────────────

func TestApply_AddDentroDelLimite(t *testing.T) {
	cases := []struct {
		name    string
		current int64
		amount  int64
		want    int64
	}{
		{"suma simple", 10, 5, 15},
		{"desde cero", 0, 100, 100},
		{"hasta el tope exacto", 500, 500, 1000},
		{"sumar cero es neutro", 42, 0, 42},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ledger.Apply(tc.current, ledger.OperationAdd, tc.amount)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Violaciones de límites
// ──────────────────────────────────────────────────────────────────────────────

func TestApply_AddSobreElTope_Overflow(t *testing.T) {
	_, err := ledger.Apply(800, ledger.OperationAdd, 300)
	require.Error(t, err)

	var oob *domain.OutOfBoundsError
	require.True(t, errors.As(err, &oob), "debe ser OutOfBoundsError")
	assert.Equal(t, domain.Overflow, oob.Kind)
	assert.Equal(t, int64(200), oob.AllowedRemaining,
		"allowed_remaining debe ser MAX - current")
}

func TestApply_SubBajoCero_Underflow(t *testing.T) {
	_, err := ledger.Apply(7, ledger.OperationSub, 8)
	require.Error(t, err)

	var oob *domain.OutOfBoundsError
	require.True(t, errors.As(err, &oob), "debe ser OutOfBoundsError")
	assert.Equal(t, domain.Underflow, oob.Kind)
	assert.Equal(t, int64(7), oob.AllowedRemaining,
		"allowed_remaining debe ser la cantidad actual")
}

func TestApply_AmountFueraDeRango_EsEntradaInvalida(t *testing.T) {
	// amount negativo o mayor al tope falla antes de intentar el delta.
	_, err := ledger.Apply(10, ledger.OperationAdd, -1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = ledger.Apply(10, ledger.OperationSub, domain.MaxProductStock+1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestApply_OperacionDesconocida_EsEntradaInvalida(t *testing.T) {
	_, err := ledger.Apply(10, ledger.Operation("MULTIPLY"), 2)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Propiedades
// ──────────────────────────────────────────────────────────────────────────────

// ADD(x) seguido de SUB(x) vuelve a la cantidad inicial para cualquier x válido.
func TestApply_AddLuegoSubEsNeutro(t *testing.T) {
	for _, x := range []int64{0, 1, 37, 250, 500} {
		inicial := int64(500)
		paso, err := ledger.Apply(inicial, ledger.OperationAdd, x)
		require.NoError(t, err)
		final, err := ledger.Apply(paso, ledger.OperationSub, x)
		require.NoError(t, err)
		assert.Equal(t, inicial, final)
	}
}

// Escenario de referencia: producto con 500 unidades y tope 1000.
func TestApply_EscenarioCompleto(t *testing.T) {
	// ADD(500) llena hasta el tope
	qty, err := ledger.Apply(500, ledger.OperationAdd, 500)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), qty)

	// ADD(1) sobre el tope: overflow con 0 unidades admisibles
	_, err = ledger.Apply(qty, ledger.OperationAdd, 1)
	var oob *domain.OutOfBoundsError
	require.True(t, errors.As(err, &oob))
	assert.Equal(t, domain.Overflow, oob.Kind)
	assert.Equal(t, int64(0), oob.AllowedRemaining)

	// SUB(1000) vacía el stock
	qty, err = ledger.Apply(1000, ledger.OperationSub, 1000)
	require.NoError(t, err)
	assert.Equal(t, int64(0), qty)

	// SUB(1) sobre cero: underflow con 0 unidades retirables
	_, err = ledger.Apply(qty, ledger.OperationSub, 1)
	require.True(t, errors.As(err, &oob))
	assert.Equal(t, domain.Underflow, oob.Kind)
	assert.Equal(t, int64(0), oob.AllowedRemaining)
}
