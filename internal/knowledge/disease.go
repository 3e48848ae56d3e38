package knowledge

import "github.com/ds124wfegd/tomato-gateway/internal/entity"

const (
	BacterialSpot    = "Mancha bacteriana"
	EarlyBlight      = "Tizón temprano"
	Healthy          = "Hoja sana"
	LateBlight       = "Tizón tardío"
	LeafMold         = "Moho de la hoja"
	SeptoriaLeafSpot = "Mancha foliar por Septoria"
	SpiderMites      = "Ácaros araña (Araña roja de dos manchas)"
	TargetSpot       = "Mancha de objetivo"
	MosaicVirus      = "Virus del mosaico del tomate"
	YellowLeafCurl   = "Virus del rizado amarillo de la hoja del tomate"
)

// Diseases in the order the classifier emits its classes.
var Diseases = DiseaseTable{
	Labels: []string{
		BacterialSpot,
		EarlyBlight,
		Healthy,
		LateBlight,
		LeafMold,
		SeptoriaLeafSpot,
		SpiderMites,
		TargetSpot,
		MosaicVirus,
		YellowLeafCurl,
	},
	DefaultLabel: LateBlight,
	Entries: map[string]DiseaseEntry{
		BacterialSpot: {
			RiskLevel:  entity.RiskHigh,
			Symptoms:   "Manchas pequeñas, oscuras y acuosas en hojas, tallos y frutos",
			Treatment:  "Aplicar bactericidas a base de cobre, eliminar plantas infectadas",
			Prevention: "Evitar riego por aspersión, usar semillas certificadas, rotación de cultivos",
		},
		EarlyBlight: {
			RiskLevel:  entity.RiskMedium,
			Symptoms:   "Manchas circulares con anillos concéntricos, amarillamiento de hojas",
			Treatment:  "Fungicidas preventivos, mejorar ventilación, reducir humedad",
			Prevention: "Espaciamiento adecuado, evitar estrés hídrico, fertilización balanceada",
		},
		Healthy: {
			RiskLevel:  entity.RiskNone,
			Symptoms:   "No se detectan síntomas de enfermedad",
			Treatment:  "Mantener prácticas de manejo preventivo",
			Prevention: "Continuar con programa de monitoreo regular",
		},
		LateBlight: {
			RiskLevel:  entity.RiskHigh,
			Symptoms:   "Manchas marrones irregulares con bordes amarillos, esporulación blanca",
			Treatment:  "Fungicida sistémico a base de cobre, mejorar ventilación, reducir humedad",
			Prevention: "Rotación de cultivos, variedades resistentes, manejo del riego",
		},
		LeafMold: {
			RiskLevel:  entity.RiskMedium,
			Symptoms:   "Manchas amarillas en haz, crecimiento aterciopelado en envés",
			Treatment:  "Fungicidas específicos, mejorar circulación de aire",
			Prevention: "Control de humedad, espaciamiento adecuado entre plantas",
		},
		SeptoriaLeafSpot: {
			RiskLevel:  entity.RiskMedium,
			Symptoms:   "Pequeñas manchas circulares con centro gris y borde oscuro",
			Treatment:  "Fungicidas preventivos, eliminación de hojas afectadas",
			Prevention: "Evitar salpicaduras de agua, mulching, rotación de cultivos",
		},
		SpiderMites: {
			RiskLevel:  entity.RiskHigh,
			Symptoms:   "Punteado amarillo en hojas, telarañas finas, decoloración",
			Treatment:  "Acaricidas específicos, aumento de humedad relativa",
			Prevention: "Monitoreo regular, control biológico, evitar estrés hídrico",
		},
		TargetSpot: {
			RiskLevel:  entity.RiskMedium,
			Symptoms:   "Manchas circulares con anillos concéntricos tipo diana",
			Treatment:  "Fungicidas preventivos, eliminación de tejido infectado",
			Prevention: "Rotación de cultivos, manejo de residuos, ventilación adecuada",
		},
		MosaicVirus: {
			RiskLevel:  entity.RiskHigh,
			Symptoms:   "Patrón de mosaico verde claro y oscuro, deformación de hojas",
			Treatment:  "No hay tratamiento curativo, eliminar plantas infectadas",
			Prevention: "Control de vectores, uso de semillas certificadas, desinfección de herramientas",
		},
		YellowLeafCurl: {
			RiskLevel:  entity.RiskHigh,
			Symptoms:   "Amarillamiento y rizado hacia arriba de hojas, enanismo",
			Treatment:  "Eliminar plantas infectadas, control de mosca blanca",
			Prevention: "Control de vectores, uso de mallas, variedades resistentes",
		},
	},
}
