package http_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/catalogo-api/internal/domain/repository"
	httpiface "github.com/jhoicas/catalogo-api/internal/interfaces/http"
)

func TestParseSortKeys(t *testing.T) {
	tests := []struct {
		name   string
		params []string
		want   []repository.SortKey
	}{
		{
			name:   "sin parámetros",
			params: nil,
			want:   []repository.SortKey{},
		},
		{
			name:   "campo solo, dirección por defecto ASC",
			params: []string{"name"},
			want:   []repository.SortKey{{Field: "name", Direction: repository.SortAsc}},
		},
		{
			name:   "campo con dirección desc",
			params: []string{"price,desc"},
			want:   []repository.SortKey{{Field: "price", Direction: repository.SortDesc}},
		},
		{
			name:   "dirección insensible a mayúsculas",
			params: []string{"price,DESC"},
			want:   []repository.SortKey{{Field: "price", Direction: repository.SortDesc}},
		},
		{
			name:   "dirección desconocida cae en ASC",
			params: []string{"price,descending"},
			want:   []repository.SortKey{{Field: "price", Direction: repository.SortAsc}},
		},
		{
			name:   "espacios alrededor de campo y dirección",
			params: []string{" name , desc "},
			want:   []repository.SortKey{{Field: "name", Direction: repository.SortDesc}},
		},
		{
			name:   "múltiples claves preservan el orden",
			params: []string{"name,asc", "price,desc", "created_at"},
			want: []repository.SortKey{
				{Field: "name", Direction: repository.SortAsc},
				{Field: "price", Direction: repository.SortDesc},
				{Field: "created_at", Direction: repository.SortAsc},
			},
		},
		{
			name:   "campo vacío se descarta",
			params: []string{"", ",desc", "name"},
			want:   []repository.SortKey{{Field: "name", Direction: repository.SortAsc}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := httpiface.ParseSortKeys(tt.params)
			assert.Equal(t, tt.want, got)
		})
	}
}
