package curriculum

// TopicType distinguishes conceptual topics from hands-on labs.
type TopicType string

const (
	TopicTheory TopicType = "theory"
	TopicLab    TopicType = "lab"
)

// Category groups modules by AWS service area.
type Category string

const (
	CategoryCompute    Category = "COMPUTE"
	CategoryStorage    Category = "STORAGE"
	CategoryDatabase   Category = "DATABASE"
	CategoryNetwork    Category = "NETWORK"
	CategorySecurity   Category = "SECURITY"
	CategoryServerless Category = "SERVERLESS"
	CategoryDevOps     Category = "DEVOPS"
	CategoryArch       Category = "ARCH"
	CategoryBilling    Category = "BILLING"
)

// DisplayName returns a human-readable label for the category.
func (c Category) DisplayName() string {
	switch c {
	case CategoryCompute:
		return "Compute"
	case CategoryStorage:
		return "Storage"
	case CategoryDatabase:
		return "Database"
	case CategoryNetwork:
		return "Networking"
	case CategorySecurity:
		return "Security"
	case CategoryServerless:
		return "Serverless"
	case CategoryDevOps:
		return "DevOps"
	case CategoryArch:
		return "Architecture"
	case CategoryBilling:
		return "Billing"
	default:
		return string(c)
	}
}

// Difficulty is the intended audience level of a module.
type Difficulty string

const (
	Beginner     Difficulty = "Beginner"
	Intermediate Difficulty = "Intermediate"
	Advanced     Difficulty = "Advanced"
)

// Topic is a single learning unit inside a module.
type Topic struct {
	ID    string    `yaml:"id"`
	Title string    `yaml:"title"`
	Type  TopicType `yaml:"type"`
}

// Module is an ordered group of topics under one subject.
type Module struct {
	ID          string     `yaml:"id"`
	Title       string     `yaml:"title"`
	Description string     `yaml:"description"`
	Icon        string     `yaml:"icon"`
	Category    Category   `yaml:"category"`
	Difficulty  Difficulty `yaml:"difficulty"`
	Topics      []Topic    `yaml:"topics"`
}

// TopicIDs returns the ids of the module's topics in curriculum order.
func (m Module) TopicIDs() []string {
	ids := make([]string, len(m.Topics))
	for i, t := range m.Topics {
		ids[i] = t.ID
	}
	return ids
}

// Track is an ordered group of modules representing a learning phase.
type Track struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Modules     []Module `yaml:"modules"`
}

// Resource is an external link in the ecosystem directory.
type Resource struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	URL         string   `yaml:"url"`
	Icon        string   `yaml:"icon"`
	Tags        []string `yaml:"tags"`
}

// ResourceCategory groups resources under one heading.
type ResourceCategory struct {
	ID    string     `yaml:"id"`
	Title string     `yaml:"title"`
	Items []Resource `yaml:"items"`
}
