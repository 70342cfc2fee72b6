package dialect

// Generic is the ANSI/SQL-92-ish baseline dialect: no vendor extensions,
// used when no more specific dialect is selected.
type Generic struct{ BaseDialect }

func (Generic) Name() string { return "generic" }
