package curriculum

// Lesson is a single unit of instruction with its challenge and solution material.
type Lesson struct {
	ID            string   `yaml:"id"`
	Title         string   `yaml:"title"`
	Concept       string   `yaml:"concept"`
	Challenge     string   `yaml:"challenge"`
	Hints         []string `yaml:"hints"`
	SolutionSteps []string `yaml:"solution_steps"`
	Answer        string   `yaml:"answer"`
	FollowUp      string   `yaml:"follow_up"`
}

// Phase groups lessons under a common theme.
type Phase struct {
	ID          int      `yaml:"id"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Lessons     []Lesson `yaml:"lessons"`
}

// document is the on-disk shape of the curriculum file.
type document struct {
	Phases []Phase `yaml:"phases"`
}
