// ABOUTME: Administrative metadata records
// ABOUTME: Identity, ownership and timestamps, with file and URL variants

package record

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/kallestad/metastudio/pkg/attrs"
)

// Admin holds administrative metadata: a generated identity, ownership and
// lifecycle timestamps. Only modifier, modified and the update counter are
// dynamic; id, created and objectname are write-once.
type Admin struct {
	base
}

// NewAdmin builds an administrative record for the given entity
func NewAdmin(env Environ, entity Entity, name string) (*Admin, error) {
	a := &Admin{base: newBase(KindAdministrative, env, entity, name)}

	// Read the user and clock once so every derived field agrees
	user := env.Username()
	now := env.Now()
	class := entity.ClassName()

	ad := adder{store: a.store}
	ad.add("id", attrs.NewStringValue(uuid.New().String()))
	ad.add("name", attrs.NewStringValue(name))
	ad.add("creator", attrs.NewStringValue(user))
	ad.add("created", attrs.NewStringValue(now.Format(stampLayout)))
	ad.add("modifier", attrs.NewStringValue(user))
	ad.add("modified", attrs.NewStringValue(now.Format(stampLayout)))
	ad.add("updates", attrs.NewIntValue(0))
	ad.add("classname", attrs.NewStringValue(class))
	ad.add("objectname", attrs.NewStringValue(objectName(user, now, class, name)))
	if ad.err != nil {
		return nil, ad.err
	}

	a.built()
	return a, nil
}

// Update refreshes the modifier, the modified timestamp and the update
// counter. All other administrative fields are write-once.
func (a *Admin) Update(event string) error {
	if err := a.store.Change("modifier", attrs.NewStringValue(a.env.Username())); err != nil {
		return err
	}
	if err := a.store.Change("modified", attrs.NewStringValue(a.env.Now().Format(stampLayout))); err != nil {
		return err
	}
	if err := a.store.Increment("updates"); err != nil {
		return err
	}
	a.updated(event)
	return nil
}

// NewFileAdmin builds an administrative record extended with resolved path
// facts and filesystem timestamps for a file-backed entity. An empty path
// yields a plain administrative record.
func NewFileAdmin(env Environ, entity Entity, name, path string) (*Admin, error) {
	a, err := NewAdmin(env, entity, name)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return a, nil
	}

	st, err := env.Stat(path)
	if err != nil {
		return nil, err
	}

	ad := adder{store: a.store}
	ad.add("path", attrs.NewStringValue(path))
	ad.add("directory", attrs.NewStringValue(filepath.Dir(path)))
	ad.add("filename", attrs.NewStringValue(filepath.Base(path)))
	ad.add("fileext", attrs.NewStringValue(filepath.Ext(path)))
	ad.add("file_exists", attrs.NewBoolValue(st.Exists))
	if st.Exists {
		ad.add("file_created", attrs.NewStringValue(st.Created.Format(stampLayout)))
		ad.add("file_last_accessed", attrs.NewStringValue(st.Accessed.Format(stampLayout)))
		ad.add("file_last_modified", attrs.NewStringValue(st.Modified.Format(stampLayout)))
	}
	if ad.err != nil {
		return nil, ad.err
	}
	return a, nil
}

// NewRemoteAdmin builds an administrative record extended with every
// supplied parameter whose key contains "url". Other keys are ignored.
func NewRemoteAdmin(env Environ, entity Entity, name string, params Params) (*Admin, error) {
	a, err := NewAdmin(env, entity, name)
	if err != nil {
		return nil, err
	}

	ad := adder{store: a.store}
	for _, key := range sortedKeys(params) {
		if strings.Contains(strings.ToLower(key), "url") {
			ad.add(key, attrs.NewStringValue(params[key]))
		}
	}
	if ad.err != nil {
		return nil, ad.err
	}
	return a, nil
}
