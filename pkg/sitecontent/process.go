package sitecontent

import "golang.org/x/sync/errgroup"

// Typed processors for the composable content model: a Page owns ordered
// Sections, a Section owns ordered polymorphic Items, Navigation and Footer
// own link sequences. All of them are pure transformations over entries the
// CMS boundary already fetched.

// ProcessPage converts a page entry. Sections are normalized concurrently;
// each branch writes only its own output slot, so assembly stays
// deterministic and order-preserving.
func (n *Normalizer) ProcessPage(entry *Entry) *ProcessedPage {
	page := &ProcessedPage{
		ID:              entry.ID,
		Title:           n.fieldString(entry, "title"),
		Slug:            n.fieldString(entry, "slug"),
		MetaDescription: n.fieldString(entry, "metaDescription"),
	}
	if meta := n.fieldAsset(entry, "metaImage"); meta != nil {
		page.MetaImage = n.assetURL(meta)
	}

	sections := n.fieldEntries(entry, "sections")
	page.Sections = make([]ProcessedSection, len(sections))
	g := new(errgroup.Group)
	for i, section := range sections {
		i, section := i, section
		g.Go(func() error {
			page.Sections[i] = n.ProcessSection(section)
			return nil
		})
	}
	_ = g.Wait() // branches only fill their slots, none can fail

	return page
}

// ProcessSection converts a section entry, dispatching its polymorphic
// items in source order.
func (n *Normalizer) ProcessSection(entry *Entry) ProcessedSection {
	section := ProcessedSection{
		ID:              entry.ID,
		InternalName:    n.fieldString(entry, "internalName"),
		Type:            n.fieldString(entry, "type"),
		Title:           n.fieldString(entry, "title"),
		Headline:        n.fieldString(entry, "headline"),
		Subtitle:        n.fieldString(entry, "subtitle"),
		Description:     n.fieldString(entry, "description"),
		BackgroundColor: n.fieldString(entry, "backgroundColor"),
		Metadata:        n.fieldMap(entry, "metadata"),
	}
	section.PrimaryButton = n.processButton(entry, "primaryButtonText", "primaryButtonUrl")
	section.SecondaryButton = n.processButton(entry, "secondaryButtonText", "secondaryButtonUrl")

	items := n.fieldEntries(entry, "items")
	section.Items = make([]ProcessedComponent, len(items))
	for i, item := range items {
		section.Items[i] = n.DispatchItem(item)
	}

	if media := n.fieldAsset(entry, "media"); media != nil {
		section.Media = n.processImage(media, section.Title)
	}
	return section
}

// processButton pairs a text/url field couple; both must be present.
func (n *Normalizer) processButton(entry *Entry, textField, urlField string) *ProcessedButton {
	text := n.fieldString(entry, textField)
	url := n.fieldString(entry, urlField)
	if text == "" || url == "" {
		return nil
	}
	return &ProcessedButton{Text: text, URL: url}
}

// ProcessNavigation converts a navigation entry, recursing into dropdown
// children up to the configured link depth.
func (n *Normalizer) ProcessNavigation(entry *Entry) *ProcessedNavigation {
	items := n.fieldEntries(entry, "menuItems")
	nav := &ProcessedNavigation{
		BrandName:           n.fieldString(entry, "brandName"),
		MenuItems:           make([]ProcessedMenuItem, len(items)),
		PrimaryButtonText:   n.fieldString(entry, "primaryButtonText"),
		SecondaryButtonText: n.fieldString(entry, "secondaryButtonText"),
	}
	for i, item := range items {
		nav.MenuItems[i] = n.processMenuItem(item, n.linkDepth)
	}
	return nav
}

// processMenuItem stops recursing at zero remaining depth; entries beyond
// the fetch's include depth are Link markers anyway and carry no children.
func (n *Normalizer) processMenuItem(entry *Entry, depth int) ProcessedMenuItem {
	item := ProcessedMenuItem{
		Label:         n.fieldString(entry, "label"),
		URL:           n.fieldString(entry, "url"),
		HasDropdown:   n.fieldBool(entry, "hasDropdown"),
		DropdownItems: make([]ProcessedMenuItem, 0),
	}
	if depth <= 0 {
		return item
	}
	for _, child := range n.fieldEntries(entry, "dropdownItems") {
		item.DropdownItems = append(item.DropdownItems, n.processMenuItem(child, depth-1))
	}
	return item
}

// ProcessFooter converts a footer entry.
func (n *Normalizer) ProcessFooter(entry *Entry) *ProcessedFooter {
	footer := &ProcessedFooter{
		CopyrightText:       n.fieldString(entry, "copyrightText"),
		CompanyName:         n.fieldString(entry, "companyName"),
		CompanyURL:          n.fieldString(entry, "companyUrl"),
		FooterLinks:         make([]ProcessedLink, 0),
		SocialLinks:         make([]ProcessedLink, 0),
		CertificationImages: make([]string, 0),
	}
	for _, link := range n.fieldEntries(entry, "footerLinks") {
		footer.FooterLinks = append(footer.FooterLinks, n.processLink(link))
	}
	for _, link := range n.fieldEntries(entry, "socialLinks") {
		footer.SocialLinks = append(footer.SocialLinks, n.processLink(link))
	}
	for _, asset := range n.fieldAssets(entry, "certificationImages") {
		footer.CertificationImages = append(footer.CertificationImages, n.assetURL(asset))
	}
	return footer
}

func (n *Normalizer) processLink(entry *Entry) ProcessedLink {
	link := ProcessedLink{
		Label: n.fieldString(entry, "label"),
		URL:   n.fieldString(entry, "url"),
		Type:  n.fieldString(entry, "type"),
	}
	if icon := n.fieldAsset(entry, "icon"); icon != nil {
		link.Icon = n.assetURL(icon)
	}
	return link
}
