package knowledge

import "github.com/ds124wfegd/tomato-gateway/internal/entity"

const (
	Premium   = "Premium"
	Good      = "Buena"
	Regular   = "Regular"
	Defective = "Defectuosa"
)

var Qualities = QualityTable{
	Labels:       []string{Premium, Good, Regular, Defective},
	DefaultLabel: Regular,
	Entries: map[string]QualityEntry{
		Premium: {
			Grade: entity.GradeAPlus,
			Characteristics: entity.Characteristics{
				Color:     "Excelente - Verde uniforme y vibrante",
				Texture:   "Óptima - Sin defectos visibles",
				Size:      "Ideal - Dentro de parámetros premium",
				Freshness: "Muy fresco - Sin signos de deterioro",
			},
			Recommendation: "Producto listo para comercialización premium. Mantener cadena de frío.",
		},
		Good: {
			Grade: entity.GradeA,
			Characteristics: entity.Characteristics{
				Color:     "Bueno - Verde adecuado con ligeras variaciones",
				Texture:   "Buena - Defectos menores aceptables",
				Size:      "Adecuado - Dentro de rangos comerciales",
				Freshness: "Fresco - Condición comercial aceptable",
			},
			Recommendation: "Apto para comercialización estándar. Procesar en corto plazo.",
		},
		Regular: {
			Grade: entity.GradeB,
			Characteristics: entity.Characteristics{
				Color:     "Regular - Variaciones notables en coloración",
				Texture:   "Aceptable - Algunos defectos visibles",
				Size:      "Variable - Fuera de algunos parámetros",
				Freshness: "Moderado - Signos iniciales de deterioro",
			},
			Recommendation: "Apto para procesamiento industrial. No recomendado para venta fresca.",
		},
		Defective: {
			Grade: entity.GradeC,
			Characteristics: entity.Characteristics{
				Color:     "Deficiente - Decoloración significativa",
				Texture:   "Pobre - Múltiples defectos evidentes",
				Size:      "Inadecuado - Fuera de parámetros",
				Freshness: "Deteriorado - Signos avanzados de deterioro",
			},
			Recommendation: "No apto para comercialización. Descartar o compostar.",
		},
	},
}
