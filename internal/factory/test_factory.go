package factory

import (
	"time"

	"github.com/mcoot/palabras/internal/dependencies/mocks"
	"github.com/mcoot/palabras/internal/storage/memory"
	"github.com/mcoot/palabras/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies.
// The mock random source never reorders, so the bag is dealt in distribution order.
func NewTestApp() *TestApp {
	return NewTestAppWithOptions(Options{})
}

// NewTestAppWithOptions is NewTestApp with explicit service options
func NewTestAppWithOptions(opts Options) *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app, err := newWithDependencies(store, mockClock, mockRandom, opts, testutil.NopLogger())
	if err != nil {
		panic(err)
	}

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// LoadTestDictionary loads a small Spanish word list for testing
func (t *TestApp) LoadTestDictionary() error {
	words := []string{
		// 2-letter words
		"al", "da", "de", "el", "en", "es", "ir", "la", "le", "lo",
		"me", "mi", "no", "os", "se", "si", "su", "te", "tu", "ya",
		// 3-letter words
		"ajo", "ala", "ama", "ano", "ara", "asa", "ave", "aza", "col", "con",
		"dos", "eso", "fin", "gol", "ira", "las", "les", "los", "mar", "mes",
		"oca", "oro", "oso", "pan", "paz", "pie", "rio", "sal", "sed", "sol",
		"tea", "tio", "una", "uno", "uva", "voz",
		// 4-letter words
		"agua", "alto", "amor", "arte", "asno", "boca", "cama", "casa", "cena", "cine",
		"dedo", "gato", "hola", "lana", "leon", "luna", "mama", "mano", "mesa", "nata",
		"nido", "niño", "ojos", "olla", "papa", "pato", "pera", "rosa", "sala", "sano",
		"taza", "toro", "tres", "vaso",
		// 5-letter words
		"arena", "calle", "campo", "cielo", "coche", "gallo", "lento", "libro", "mundo", "noche",
		"perro", "playa", "queso", "reloj", "silla", "tiene", "tierra",
		// 6-letter words
		"amigos", "camino", "cereza", "ciudad", "tomate", "ventana",
	}
	return t.DictionaryService.LoadWords(words)
}
