package backend

import (
	"flag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"vincit.fi/meme-generator/common/util"
)

func TestInitialize_WithoutSpeech(t *testing.T) {
	a := assert.New(t)
	r := require.New(t)

	t.Setenv("OPENAI_API_KEY", "")
	dir := t.TempDir()
	params, err := util.ParseParamsFrom(flag.NewFlagSet("test", flag.ContinueOnError), []string{
		"-dataDir", dir,
		"-imageDir", filepath.Join(dir, "images"),
		"-outputDir", filepath.Join(dir, "memes"),
		"-audioDir", filepath.Join(dir, "audio"),
		"-canvasWidth", "200",
		"-canvasHeight", "100",
	})
	r.NoError(err)

	stores, err := InitializeStores(params)
	r.NoError(err)
	defer stores.Close()
	a.FileExists(filepath.Join(dir, "memes.db"))

	brokers := InitializeEventBrokers(params.EventBusQueueSize())
	services, err := InitializeServices(params, stores, brokers)
	r.NoError(err)
	defer services.Close()
	a.Nil(services.Synthesizer)

	httpServer := InitializeServer(services, stores, brokers)
	resp, err := httpServer.App().Test(httptest.NewRequest(http.MethodGet, "/state", nil), -1)
	r.NoError(err)
	a.Equal(http.StatusOK, resp.StatusCode)
}

func TestInitializeServices_InvalidColor(t *testing.T) {
	r := require.New(t)

	dir := t.TempDir()
	params, err := util.ParseParamsFrom(flag.NewFlagSet("test", flag.ContinueOnError), []string{
		"-dataDir", dir,
		"-captionColor", "not-a-colour",
	})
	r.NoError(err)

	stores, err := InitializeStores(params)
	r.NoError(err)
	defer stores.Close()

	_, err = InitializeServices(params, stores, InitializeEventBrokers(10))
	r.Error(err)
}
