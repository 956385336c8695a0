package models

// CatalogTopic is a predefined ESG topic from the ESRS taxonomy.
type CatalogTopic struct {
	Slug        string        `json:"slug"`
	Name        string        `json:"name"`
	Category    TopicCategory `json:"category"`
	Subcategory string        `json:"subcategory"`
}

// Catalog returns the predefined topic taxonomy. The slug is the topic's
// identity within an organization; the subcategory is its ESRS code.
func Catalog() []CatalogTopic {
	return []CatalogTopic{
		{Slug: "climate-change", Name: "Climate Change", Category: CategoryEnvironmental, Subcategory: "E1"},
		{Slug: "pollution", Name: "Pollution", Category: CategoryEnvironmental, Subcategory: "E2"},
		{Slug: "water-and-marine-resources", Name: "Water and Marine Resources", Category: CategoryEnvironmental, Subcategory: "E3"},
		{Slug: "biodiversity-and-ecosystems", Name: "Biodiversity and Ecosystems", Category: CategoryEnvironmental, Subcategory: "E4"},
		{Slug: "resource-use-and-circular-economy", Name: "Resource Use and Circular Economy", Category: CategoryEnvironmental, Subcategory: "E5"},
		{Slug: "own-workforce", Name: "Own Workforce", Category: CategorySocial, Subcategory: "S1"},
		{Slug: "workers-in-the-value-chain", Name: "Workers in the Value Chain", Category: CategorySocial, Subcategory: "S2"},
		{Slug: "affected-communities", Name: "Affected Communities", Category: CategorySocial, Subcategory: "S3"},
		{Slug: "consumers-and-end-users", Name: "Consumers and End-Users", Category: CategorySocial, Subcategory: "S4"},
		{Slug: "business-conduct", Name: "Business Conduct", Category: CategoryGovernance, Subcategory: "G1"},
	}
}

// CatalogLookup indexes the catalog by slug.
func CatalogLookup() map[string]CatalogTopic {
	catalog := Catalog()
	lookup := make(map[string]CatalogTopic, len(catalog))
	for _, entry := range catalog {
		lookup[entry.Slug] = entry
	}
	return lookup
}
