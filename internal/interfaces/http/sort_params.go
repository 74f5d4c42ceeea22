package http

import (
	"strings"

	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// ParseSortKeys traduce los parámetros order del query string a criterios de
// orden. Cada valor tiene la forma "campo,direccion"; la dirección se compara
// sin distinguir mayúsculas y cualquier token no reconocido (o ausente) cae en
// ASC. El orden de los criterios se preserva: el primero es la clave primaria.
func ParseSortKeys(params []string) []repository.SortKey {
	keys := make([]repository.SortKey, 0, len(params))
	for _, param := range params {
		parts := strings.SplitN(param, ",", 2)
		field := strings.TrimSpace(parts[0])
		if field == "" {
			continue
		}
		direction := repository.SortAsc
		if len(parts) == 2 && strings.EqualFold(strings.TrimSpace(parts[1]), "desc") {
			direction = repository.SortDesc
		}
		keys = append(keys, repository.SortKey{Field: field, Direction: direction})
	}
	return keys
}
