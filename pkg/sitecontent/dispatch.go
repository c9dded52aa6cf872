package sitecontent

// itemProcessor produces the common component shape for one section item
// content type.
type itemProcessor func(n *Normalizer, entry *Entry) ProcessedComponent

// itemProcessors routes section items by their content type discriminant.
// Unknown discriminants fall through to the card fallback in DispatchItem.
var itemProcessors = map[string]itemProcessor{
	TypeComponent:   processComponent,
	TypeProduct:     processProduct,
	TypeTestimonial: processTestimonial,
}

// DispatchItem inspects the entry's content type and routes it to the
// matching processor. An unrecognized content type yields a minimal card
// component and a warning log; it never fails.
func (n *Normalizer) DispatchItem(entry *Entry) ProcessedComponent {
	if process, ok := itemProcessors[entry.ContentType]; ok {
		return process(n, entry)
	}
	n.logger.Warn("unknown item type, falling back to card",
		"content_type", entry.ContentType,
		"entry_id", entry.ID)
	return ProcessedComponent{ID: entry.ID, Type: TypeCard}
}

func processComponent(n *Normalizer, entry *Entry) ProcessedComponent {
	c := ProcessedComponent{
		ID:           entry.ID,
		InternalName: n.fieldString(entry, "internalName"),
		Type:         n.fieldString(entry, "type"),
		Title:        n.fieldString(entry, "title"),
		Subtitle:     n.fieldString(entry, "subtitle"),
		Description:  n.fieldString(entry, "description"),
		Value:        n.fieldString(entry, "value"),
		URL:          n.fieldString(entry, "url"),
		Metadata:     n.fieldMap(entry, "metadata"),
	}
	if icon := n.fieldAsset(entry, "icon"); icon != nil {
		c.Icon = n.assetURL(icon)
	}
	if image := n.fieldAsset(entry, "image"); image != nil {
		c.Image = n.processImage(image, c.Title)
	}
	return c
}

func processProduct(n *Normalizer, entry *Entry) ProcessedComponent {
	// Features keep source order; an absent field still yields an empty
	// (non-nil) list so consumers can range without a guard.
	features := make([]ProcessedComponent, 0)
	for _, f := range n.fieldEntries(entry, "features") {
		features = append(features, processComponent(n, f))
	}

	return ProcessedComponent{
		ID:          entry.ID,
		Type:        TypeProduct,
		Title:       n.fieldString(entry, "name"),
		Subtitle:    n.fieldString(entry, "tagline"),
		Description: n.fieldString(entry, "description"),
		Metadata: map[string]any{
			"color":       n.fieldString(entry, "color"),
			"slug":        n.fieldString(entry, "slug"),
			"features":    features,
			"demoContent": n.fieldAny(entry, "demoContent"),
		},
	}
}

func processTestimonial(n *Normalizer, entry *Entry) ProcessedComponent {
	metadata := map[string]any{
		"authorName":    n.fieldString(entry, "authorName"),
		"authorTitle":   n.fieldString(entry, "authorTitle"),
		"authorCompany": n.fieldString(entry, "authorCompany"),
		"rating":        n.fieldFloat(entry, "rating"),
	}
	if image := n.fieldAsset(entry, "authorImage"); image != nil {
		metadata["authorImage"] = n.assetURL(image)
	}

	return ProcessedComponent{
		ID:          entry.ID,
		Type:        TypeTestimonial,
		Description: n.fieldString(entry, "quote"),
		Metadata:    metadata,
	}
}

func (n *Normalizer) processImage(asset *Asset, fallbackAlt string) *ProcessedImage {
	alt := asset.Title
	if alt == "" {
		alt = fallbackAlt
	}
	return &ProcessedImage{
		URL:    n.assetURL(asset),
		Alt:    alt,
		Width:  asset.Width,
		Height: asset.Height,
	}
}
