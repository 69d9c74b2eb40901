package config

// projectDTO represents the structure of the crab.yaml project file.
type projectDTO struct {
	// Target is the consumption context: node or browser.
	Target string `yaml:"target"`
	// Assets are the asset paths, relative to the project root.
	Assets []string `yaml:"assets"`
	// Concurrency limits parallel asset builds. Zero means one per CPU.
	Concurrency int `yaml:"concurrency"`
}
