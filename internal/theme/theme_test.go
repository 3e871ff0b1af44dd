package theme

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type memStore struct {
	value   string
	loadErr error
	saveErr error
	saves   []string
}

func (m *memStore) LoadTheme() (string, error) { return m.value, m.loadErr }
func (m *memStore) SaveTheme(name string) error {
	m.saves = append(m.saves, name)
	if m.saveErr != nil {
		return m.saveErr
	}
	m.value = name
	return nil
}

type recorder struct{ got []Theme }

func (r *recorder) SetTheme(t Theme) { r.got = append(r.got, t) }

func TestParse(t *testing.T) {
	t.Parallel()
	assert.Equal(t, Light, Parse("light"))
	assert.Equal(t, Dark, Parse("dark"))
	assert.Equal(t, Dark, Parse(""))
	assert.Equal(t, Dark, Parse("LIGHT"))
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Dark, Load(nil).Current())
	assert.Equal(t, Dark, Load(&memStore{loadErr: errors.New("denied")}).Current())
	assert.Equal(t, Light, Load(&memStore{value: "light"}).Current())
}

func TestToggle_PersistsAndRecolorsOnce(t *testing.T) {
	t.Parallel()

	store := &memStore{}
	bg := &recorder{}
	p := Load(store, bg)
	assert.Empty(t, bg.got, "loading does not recolor")

	assert.Equal(t, Light, p.Toggle())
	assert.Equal(t, []string{"light"}, store.saves)
	assert.Equal(t, []Theme{Light}, bg.got)

	assert.Equal(t, Dark, p.Toggle())
	assert.Equal(t, []string{"light", "dark"}, store.saves)
	assert.Equal(t, []Theme{Light, Dark}, bg.got)

	p.Set(Dark)
	assert.Len(t, bg.got, 2, "setting the active theme is a no-op")
}

func TestToggle_StoreFailureIsNotFatal(t *testing.T) {
	t.Parallel()

	store := &memStore{saveErr: errors.New("read-only")}
	p := Load(store)
	assert.Equal(t, Light, p.Toggle())
	assert.Equal(t, Light, p.Current())
}

func TestPaletteFor(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "dark", PaletteFor(Dark).GlamourStyle)
	assert.Equal(t, "light", PaletteFor(Light).GlamourStyle)
	assert.NotEqual(t, PaletteFor(Dark).Background, PaletteFor(Light).Background)
}
