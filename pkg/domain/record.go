package domain

// Record is one agent's secret material plus the message to process.
// Message holds coded digits when decrypting and plaintext when encrypting.
type Record struct {
	// AgentID is the agent's five-digit identifier.
	AgentID string `env:"VIC_AGENT_ID" json:"agentId" toml:"agentId" yaml:"agentId"`
	// Date is the issue date as digits; the first five seed the key and the
	// sixth places the indicator group.
	Date string `env:"VIC_DATE" json:"date" toml:"date" yaml:"date"`
	// Phrase is the key phrase; only its first ten characters are used.
	Phrase string `env:"VIC_PHRASE" json:"phrase" toml:"phrase" yaml:"phrase"`
	// Anagram is ten characters: eight distinct letters and two spaces.
	Anagram string `env:"VIC_ANAGRAM" json:"anagram" toml:"anagram" yaml:"anagram"`
	// Message is the coded message or the plaintext.
	Message string `env:"VIC_MESSAGE" json:"message" toml:"message" yaml:"message"`
}

// Decryption is the outcome of decrypting a Record.
type Decryption struct {
	// Plaintext is the decoded message, upper-case letters only.
	Plaintext string
	// Key is the derived ten-digit permutation heading the checkerboard.
	Key string
	// Escape are the two digits that open two-digit codes.
	Escape [2]byte
	// Indicator is the five-digit group removed before decoding.
	Indicator string
}
