package cfg

type Cfg struct {
	// Data directories
	DataDir    string
	ReportsDir string

	// Discovery API credentials
	NewsAPIKey   string
	GoogleAPIKey string
	GoogleCSEID  string

	// Collection settings
	DaysBack        int
	SourcesFile     string
	ScrapersEnabled bool

	// LLM settings
	LLMProvider  string
	GroqAPIKey   string
	GroqModel    string
	OpenAIAPIKey string
	OpenAIModel  string

	// Email settings
	EmailEnabled   bool
	EmailSender    string
	EmailPassword  string
	EmailRecipient string
	SMTPServer     string
	SMTPPort       int

	// Application configuration
	Port            string
	APIAccessKey    string
	WorkerCount     int
	ReportFrequency string

	// Application metadata
	UserAgent string
	Timezone  string
	Debug     bool
	Version   string
}
