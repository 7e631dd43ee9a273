package cliconfig

import "os"

// ApplyEnvConfig applies EQUIPSIZE_* environment variables. Values override
// the file config but never a flag set on the command line.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("log-level", os.Getenv("EQUIPSIZE_LOG_LEVEL"), &cfg.LogLevel)
	s.setString("output", os.Getenv("EQUIPSIZE_OUTPUT"), &cfg.Output)
	s.setString("cases", os.Getenv("EQUIPSIZE_CASES"), &cfg.CasesPath)
	s.setString("xlsx", os.Getenv("EQUIPSIZE_XLSX"), &cfg.XLSXPath)

	if err := s.setIntFromString("max-iterations", os.Getenv("EQUIPSIZE_MAX_ITERATIONS"), &cfg.MaxIterations); err != nil {
		return err
	}
	if err := s.setFloatFromString("tolerance", os.Getenv("EQUIPSIZE_TOLERANCE"), &cfg.Tolerance); err != nil {
		return err
	}
	return s.setDuration("debounce", os.Getenv("EQUIPSIZE_DEBOUNCE"), &cfg.Debounce)
}
