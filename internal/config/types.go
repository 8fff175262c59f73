package config

// Config holds gpudao CLI configuration.
type Config struct {
	ContractAddress string `json:"contract_address"` // address the contract acts as
	ChainID         string `json:"chain_id"`         // host chain
	StorePath       string `json:"store_path"`
	DefaultSender   string `json:"default_sender"`
	DefaultChain    string `json:"default_chain"` // remote chain for admin commands

	// internal: config dir path used for Save()
	configDir string
}
