package cli

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile       string
	Language      string
	Format        string
	ShowForm      bool
	BatchFile     string
	OutputFile    string
	ListLanguages bool
	ListFormats   bool

	// Dictionary source flags
	DataDir   string
	UseSQLite bool
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		Language: "en_US",
		Format:   "org",
		DataDir:  "data",
	}
}
