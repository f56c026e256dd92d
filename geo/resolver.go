package geo

// ============================================================================
// COUNTRY NAME RESOLVER
// ============================================================================
// Two vocabularies name the same countries: the spelling used inside trade
// action records ("dataset names") and the spelling used by the boundary
// dataset that renders the map ("feature names"). Most names are identical;
// the override table lists the exceptions. The resolver only translates
// names — it owns no geometry and does not check that a feature exists.
// ============================================================================

// ToFeatureName translates a dataset country name to its boundary feature
// name. ok is false for sentinel values ("All", "Multiple"), countries with
// no renderable geography, and empty input.
func ToFeatureName(datasetName string) (string, bool) {
	if datasetName == "" || sentinels[datasetName] || unmappable[datasetName] {
		return "", false
	}
	if feature, hit := overrides[datasetName]; hit {
		return feature, true
	}
	return datasetName, true
}

// ToDatasetName translates a boundary feature name back to the dataset
// spelling. When no override applies the input is returned unchanged, so for
// every override entry ToDatasetName(ToFeatureName(name)) == name.
func ToDatasetName(featureName string) (string, bool) {
	if featureName == "" {
		return "", false
	}
	if dataset, hit := reverse[featureName]; hit {
		return dataset, true
	}
	return featureName, true
}

// IsMappable reports whether a dataset country name resolves to a
// renderable geography. Sentinels and too-small countries are not mappable.
func IsMappable(datasetName string) bool {
	_, ok := ToFeatureName(datasetName)
	return ok
}
