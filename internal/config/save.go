package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// WriteDefaultConfig writes a commented default config file to path.
// It refuses to overwrite an existing file.
func WriteDefaultConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("checking config file: %w", err)
	}

	doc := defaultConfigNode()

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	_ = encoder.Close()

	return atomicWrite(path, buf.Bytes())
}

// SaveDatabasePath updates the database_path key in the config file,
// preserving comments and formatting in other sections by using yaml.Node.
func SaveDatabasePath(configPath, dbPath string) error {
	return saveScalar(configPath, "database_path", dbPath)
}

// saveScalar updates (or appends) one top-level scalar key in the config
// file. Missing files are created with just that key.
func saveScalar(configPath, key, value string) error {
	data, err := os.ReadFile(configPath) //nolint:gosec // G304: path is the configured config location
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("reading config: %w", err)
	}

	// Parse into yaml.Node to preserve comments
	var doc yaml.Node
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("parsing config: %w", err)
		}
	}

	valueNode := &yaml.Node{Kind: yaml.ScalarNode, Value: value}

	if doc.Kind == 0 {
		// Empty or new file
		doc = yaml.Node{
			Kind: yaml.DocumentNode,
			Content: []*yaml.Node{
				{
					Kind: yaml.MappingNode,
					Content: []*yaml.Node{
						{Kind: yaml.ScalarNode, Value: key},
						valueNode,
					},
				},
			},
		}
	} else if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
		root := doc.Content[0]
		if root.Kind == yaml.MappingNode {
			found := false
			for i := 0; i < len(root.Content)-1; i += 2 {
				if root.Content[i].Value == key {
					root.Content[i+1] = valueNode
					found = true
					break
				}
			}
			if !found {
				root.Content = append(root.Content,
					&yaml.Node{Kind: yaml.ScalarNode, Value: key},
					valueNode,
				)
			}
		}
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(&doc); err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	_ = encoder.Close()

	return atomicWrite(configPath, buf.Bytes())
}

// atomicWrite writes data via a temp file and rename so a crash never leaves
// a half-written config.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	temp, err := os.CreateTemp(dir, ".larder.yaml.tmp.*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tempPath := temp.Name()

	if _, err := temp.Write(data); err != nil {
		_ = temp.Close()
		_ = os.Remove(tempPath)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := temp.Close(); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}

	return nil
}

// defaultConfigNode builds the commented default config document.
func defaultConfigNode() *yaml.Node {
	defaults := Defaults()

	mapping := &yaml.Node{Kind: yaml.MappingNode}
	addScalar := func(key, value, comment string) {
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Value: key, HeadComment: comment}
		mapping.Content = append(mapping.Content, keyNode,
			&yaml.Node{Kind: yaml.ScalarNode, Value: value})
	}

	addScalar("database_path", defaults.DatabasePath, "Location of the SQLite recipe database.")
	addScalar("log_path", defaults.LogPath, "Debug log location (written when --debug or LARDER_DEBUG is set).")

	autoRefreshKey := &yaml.Node{
		Kind:        yaml.ScalarNode,
		Value:       "auto_refresh",
		HeadComment: "Regenerate the grocery list in watch mode when the database changes.",
	}
	mapping.Content = append(mapping.Content, autoRefreshKey,
		&yaml.Node{Kind: yaml.ScalarNode, Value: "true"})

	cacheKey := &yaml.Node{Kind: yaml.ScalarNode, Value: "cache", HeadComment: "Recipe lookup cache."}
	cacheNode := &yaml.Node{
		Kind: yaml.MappingNode,
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Value: "disabled"},
			{Kind: yaml.ScalarNode, Value: "false"},
			{Kind: yaml.ScalarNode, Value: "ttl_minutes"},
			{Kind: yaml.ScalarNode, Value: "5"},
		},
	}
	mapping.Content = append(mapping.Content, cacheKey, cacheNode)

	tracingKey := &yaml.Node{
		Kind:        yaml.ScalarNode,
		Value:       "tracing",
		HeadComment: "OpenTelemetry tracing. Exporters: none, file, stdout, otlp.",
	}
	tracingNode := &yaml.Node{
		Kind: yaml.MappingNode,
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Value: "enabled"},
			{Kind: yaml.ScalarNode, Value: "false"},
			{Kind: yaml.ScalarNode, Value: "exporter"},
			{Kind: yaml.ScalarNode, Value: defaults.Tracing.Exporter},
			{Kind: yaml.ScalarNode, Value: "file_path"},
			{Kind: yaml.ScalarNode, Value: defaults.Tracing.FilePath},
			{Kind: yaml.ScalarNode, Value: "sample_rate"},
			{Kind: yaml.ScalarNode, Value: "1.0"},
		},
	}
	mapping.Content = append(mapping.Content, tracingKey, tracingNode)

	return &yaml.Node{
		Kind:    yaml.DocumentNode,
		Content: []*yaml.Node{mapping},
	}
}
