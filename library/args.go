package binspect

// Target pulls the file path out of the positional arguments. The length
// guard has to come before any indexing; zero arguments is a handled
// condition, not a panic.
func Target(args []string) (string, error) {
	if len(args) == 0 {
		return "", NewErrMissingArgument()
	}

	return args[0], nil
}
