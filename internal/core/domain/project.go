package domain

// Project is the validated build configuration for a workspace.
type Project struct {
	// Root is the absolute directory containing the project file.
	Root string
	// Target is the consumption context for every asset in the project.
	Target Target
	// Assets are the absolute paths of the assets to build.
	Assets []string
	// Concurrency limits parallel asset builds. Zero means one worker per CPU.
	Concurrency int
}
