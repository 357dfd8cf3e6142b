package vision

// Disease label sets per plant type. Index position is aligned with the
// classifier output vector for that plant, so these must only change
// together with the model artifacts.
var labelSets = map[string][]string{
	"mango": {
		"Anthracnose", "Bacterial Canker", "Cutting Weevil", "Die Back",
		"Gall Midge", "Healthy", "Powdery Mildew", "Sooty Mould",
	},
	"tomato": {
		"Bacterial_spot", "Early_blight", "Late_blight", "Leaf_Mold",
		"Septoria_leaf_spot", "Spider_mites", "Target_Spot",
		"Tomato_Yellow_Leaf_Curl_Virus", "Tomato_mosaic_virus", "healthy",
	},
	"chili": {
		"Bacterial_spot", "Healthy", "Late_blight", "Leaf_Mold",
	},
}

// SupportedPlant reports whether a classifier label set exists for the
// plant type.
func SupportedPlant(plantType string) bool {
	_, ok := labelSets[plantType]
	return ok
}

// Labels returns the ordered disease labels for the plant type, or nil
// for an unknown plant.
func Labels(plantType string) []string {
	return labelSets[plantType]
}

// PlantTypes returns the supported plant type identifiers.
func PlantTypes() []string {
	types := make([]string, 0, len(labelSets))
	for plantType := range labelSets {
		types = append(types, plantType)
	}
	return types
}
