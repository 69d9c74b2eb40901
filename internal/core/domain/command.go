package domain

// Command describes a single external tool invocation.
type Command struct {
	// Tool is the executable name, resolved against PATH, or an absolute path.
	Tool string
	// Args are the arguments, not including the tool name itself.
	Args []string
	// Dir is the working directory. Empty means the process working directory.
	Dir string
	// Env holds extra environment variables merged over the allow-listed base.
	Env map[string]string
}
