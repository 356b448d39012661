package ncm

// Header names of the four NCM API key credentials.
const (
	HeaderCPAPIID  = "X-CP-API-ID"
	HeaderCPAPIKey = "X-CP-API-KEY"
	HeaderECMID    = "X-ECM-API-ID"
	HeaderECMKey   = "X-ECM-API-KEY"
)

// APIKeys holds the four credentials every authenticated NCM call carries
// as request headers. All four are required.
type APIKeys struct {
	CPAPIID   string `mapstructure:"cp_api_id"   yaml:"cp_api_id"`
	CPAPIKey  string `mapstructure:"cp_api_key"  yaml:"cp_api_key"`
	ECMAPIID  string `mapstructure:"ecm_api_id"  yaml:"ecm_api_id"`
	ECMAPIKey string `mapstructure:"ecm_api_key" yaml:"ecm_api_key"`
}

// Validate checks that all four credentials are present, naming the first
// missing header.
func (k *APIKeys) Validate() error {
	if k == nil {
		return ErrKeysRequired
	}

	for _, field := range []struct {
		header string
		value  string
	}{
		{HeaderCPAPIID, k.CPAPIID},
		{HeaderCPAPIKey, k.CPAPIKey},
		{HeaderECMID, k.ECMAPIID},
		{HeaderECMKey, k.ECMAPIKey},
	} {
		if field.value == "" {
			return &MissingCredentialError{Header: field.header}
		}
	}

	return nil
}

// Headers returns the credentials as request headers.
func (k *APIKeys) Headers() map[string]string {
	return map[string]string{
		HeaderCPAPIID:  k.CPAPIID,
		HeaderCPAPIKey: k.CPAPIKey,
		HeaderECMID:    k.ECMAPIID,
		HeaderECMKey:   k.ECMAPIKey,
	}
}
