package domain

const DefaultPersona = `You are {{AI_NAME}}, an advanced terminal interface built by {{DEV_NAME}}. ` +
	`Respond in a precise, technical register. Address the operator as {{DEV_NAME}} when relevant. ` +
	`Prefer raw data and code blocks over prose.`

// GlobalSettings is the singleton configuration record. It is overwritten
// wholesale on every change; there are no partial updates.
type GlobalSettings struct {
	APIKeys         []string `json:"apiKeys"`
	MaintenanceMode bool     `json:"maintenanceMode"`
	FeatureImageGen bool     `json:"featureImageGen"`
	CustomPersona   string   `json:"customPersona"`
}

// DefaultSettings returns the record used when the settings collection is
// empty, e.g. on first boot.
func DefaultSettings() GlobalSettings {
	return GlobalSettings{
		APIKeys:         []string{},
		MaintenanceMode: false,
		FeatureImageGen: true,
		CustomPersona:   DefaultPersona,
	}
}
