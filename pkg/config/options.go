package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptBacDiveUser sets the DSMZ account email for BacDive API access.
func OptBacDiveUser(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("BacDive User", s) {
			c.BacDive.User = s
		}
	}
}

// OptBacDivePassword sets the DSMZ account password.
func OptBacDivePassword(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("BacDive Password", s) {
			c.BacDive.Password = s
		}
	}
}

// OptBacDiveAPIURL sets the base URL of the BacDive REST API.
func OptBacDiveAPIURL(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "/")
	return func(c *Config) {
		if isValidString("BacDive APIURL", s) {
			c.BacDive.APIURL = s
		}
	}
}

// OptBacDiveTokenURL sets the DSMZ SSO token endpoint.
func OptBacDiveTokenURL(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("BacDive TokenURL", s) {
			c.BacDive.TokenURL = s
		}
	}
}

// OptBacDivePacingMs sets the minimal delay between API calls.
func OptBacDivePacingMs(i int) Option {
	return func(c *Config) {
		if isValidInt("BacDive PacingMs", i) {
			c.BacDive.PacingMs = i
		}
	}
}

// OptBacDiveUseCache toggles the local candidate-set cache.
func OptBacDiveUseCache(b bool) Option {
	return func(c *Config) {
		c.BacDive.UseCache = b
	}
}

// OptInputAbundanceFile sets the path of the relative-abundance table.
func OptInputAbundanceFile(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Input AbundanceFile", s) {
			c.Input.AbundanceFile = s
		}
	}
}

// OptInputLineageColumn sets the header of the lineage column.
func OptInputLineageColumn(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Input LineageColumn", s) {
			c.Input.LineageColumn = s
		}
	}
}

// OptOutputCSVFile sets the path of the long-format CSV output.
func OptOutputCSVFile(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Output CSVFile", s) {
			c.Output.CSVFile = s
		}
	}
}

// OptOutputSQLiteFile sets the path of the optional SQLite output.
func OptOutputSQLiteFile(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		c.Output.SQLiteFile = s
	}
}

// OptLimit caps the number of species processed.
func OptLimit(i int) Option {
	return func(c *Config) {
		if i >= 0 {
			c.Limit = i
		}
	}
}

// OptShowProgress toggles the console progress bar.
func OptShowProgress(b bool) Option {
	return func(c *Config) {
		c.ShowProgress = b
	}
}

// OptLogFormat sets the logging format ('json' or 'text').
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogLevel sets the logging level.
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogDestination sets where log output goes.
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptHomeDir sets the user's home directory for file system paths.
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("HomeDir", s) {
			c.HomeDir = s
		}
	}
}
