package config

// EnvDeepSeekAPIKey is the language-model credential the chat proxy needs
const EnvDeepSeekAPIKey = "DEEPSEEK_API_KEY"

// RequiredEnvVars must be set for the application to be fully functional
var RequiredEnvVars = []string{
	EnvDeepSeekAPIKey,
}

// EnvStatus describes one required variable
type EnvStatus struct {
	Name    string
	Present bool
	// Preview is a masked rendering of the value, safe to print
	Preview string
}

// CheckRequired reports the presence of every required variable using lookup
// (normally os.LookupEnv). The second return is true when all are present.
func CheckRequired(lookup func(string) (string, bool)) ([]EnvStatus, bool) {
	statuses := make([]EnvStatus, 0, len(RequiredEnvVars))
	allPresent := true

	for _, name := range RequiredEnvVars {
		value, _ := lookup(name)
		st := EnvStatus{Name: name, Present: value != ""}
		if st.Present {
			st.Preview = mask(value)
		} else {
			allPresent = false
		}
		statuses = append(statuses, st)
	}

	return statuses, allPresent
}

// mask keeps the first 10 characters of long secrets
func mask(value string) string {
	r := []rune(value)
	if len(r) > 10 {
		return string(r[:10]) + "..."
	}
	return value
}
