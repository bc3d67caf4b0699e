package config

// Seekfile represents the structure of the .seek.yaml configuration file.
// Pointer fields distinguish "not set" from the zero value.
type Seekfile struct {
	Recursive  *bool  `yaml:"recursive"`
	IgnoreCase *bool  `yaml:"ignoreCase"`
	Mode       string `yaml:"mode"`
	Color      string `yaml:"color"`
}
