package alias

import (
	"sort"
	"strings"

	"demoshell/internal/config"
)

// Load reads the alias section of the config file at path.
func Load(path string) (Table, error) {
	c, err := config.Load(path)
	if err != nil {
		return Table{}, err
	}
	return New(c.Aliases), nil
}

// Set adds or replaces one alias and saves the file. It reports whether an
// existing alias was replaced.
func Set(path, name, target string) (replaced bool, err error) {
	name = config.NormalizeKey(name)
	target = strings.TrimSpace(target)
	if name == "" || target == "" {
		return false, config.ErrInvalid
	}
	c, err := config.Load(path)
	if err != nil {
		return false, err
	}
	if c.Aliases == nil {
		c.Aliases = map[string]string{}
	}
	_, replaced = c.Aliases[name]
	c.Aliases[name] = target
	if err := config.Save(path, c); err != nil {
		return false, err
	}
	return replaced, nil
}

// Remove deletes aliases by name, returning which were removed and which
// were missing.
func Remove(path string, names []string) (removed []string, missing []string, err error) {
	c, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}
	for _, n := range names {
		n = config.NormalizeKey(n)
		if n == "" {
			continue
		}
		if _, ok := c.Aliases[n]; ok {
			delete(c.Aliases, n)
			removed = append(removed, n)
		} else {
			missing = append(missing, n)
		}
	}
	if len(removed) > 0 {
		if err := config.Save(path, c); err != nil {
			return nil, nil, err
		}
	}
	sort.Strings(removed)
	sort.Strings(missing)
	return removed, missing, nil
}
