package main

import (
	"bytes"
	"encoding/base64"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack"

	"github.com/njones/sioclient/processor"
	"github.com/njones/sioclient/protocol"
)

const testFixture = `
[[packet]]
engine = "message"
type = 0

[[packet]]
type = 2
data = '["chat message","hello","world"]'

[[packet]]
type = 3
id = 7
data = '["ok",42]'

[[packet]]
type = 2
data = 'not-json'

[[packet]]
type = 2
data = '[]'

[[packet]]
type = 1

[[packet]]
engine = "ping"
`

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("SIOCLIENT_LOG_LEVEL", "off")

	out := new(bytes.Buffer)
	cmd := rootCmd()
	cmd.SetOut(out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

var wantReplay = `connected
event "chat message" ["hello" "world"]
ack 7 ["ok" "42"]
error error while deserializing event message: payload parse: payload decode: invalid character at offset 0` + "\t" + `{"packet":"packet{engine:message type:event data:not-json}"}
fault packet 6: disconnect packets are not implemented` + "\t" + `{"packet":"packet{engine:message type:disconnect}"}
fault packet 7: no processor registered for ping packets` + "\t" + `{"packet":"packet{engine:ping type:none}"}
replayed 7 packets, 2 faults
`

func TestRunChannelSink(t *testing.T) {
	fixture := writeFile(t, "fixture.toml", testFixture)

	have, err := execute(t, "run", fixture)
	require.NoError(t, err)
	assert.Equal(t, wantReplay, have)
}

func TestRunWatermillSink(t *testing.T) {
	fixture := writeFile(t, "fixture.toml", testFixture)
	cfg := writeFile(t, "sioclient.toml", "[sink]\nkind = \"watermill\"\nbuffer = 4\n")

	have, err := execute(t, "run", "--config", cfg, fixture)
	require.NoError(t, err)
	assert.Equal(t, wantReplay, have)
}

func TestRunMetrics(t *testing.T) {
	fixture := writeFile(t, "fixture.toml", testFixture)
	cfg := writeFile(t, "sioclient.toml", "[metrics]\nenabled = true\nnamespace = \"replay\"\n")

	have, err := execute(t, "run", "-c", cfg, fixture)
	require.NoError(t, err)
	assert.Contains(t, have, `replay_sink_events_published_total{kind="ack"} 1`)
	assert.Contains(t, have, `replay_sink_events_published_total{kind="connected"} 1`)
	assert.Contains(t, have, `replay_sink_events_published_total{kind="error"} 1`)
	assert.Contains(t, have, `replay_sink_events_published_total{kind="event"} 1`)
}

func TestRunStopOnError(t *testing.T) {
	fixture := writeFile(t, "fixture.toml", testFixture)

	have, err := execute(t, "run", "--stop-on-error", fixture)
	assert.ErrorIs(t, err, processor.ErrNotImplemented)
	assert.NotContains(t, have, "replayed")
	assert.Contains(t, have, "fault packet 6")
}

func TestRunMsgPack(t *testing.T) {
	data, err := msgpack.Marshal([]interface{}{"greet", "hi"})
	require.NoError(t, err)

	fixture := writeFile(t, "fixture.toml", "[[packet]]\ntype = 2\ndata_base64 = \""+base64.StdEncoding.EncodeToString(data)+"\"\n")
	cfg := writeFile(t, "sioclient.toml", "[payload]\ncodec = \"msgpack\"\n")

	have, err := execute(t, "run", "-c", cfg, fixture)
	require.NoError(t, err)
	assert.Equal(t, "event \"greet\" [\"hi\"]\nreplayed 1 packets, 0 faults\n", have)
}

func TestRunBadInput(t *testing.T) {
	_, err := execute(t, "run", filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	bad := writeFile(t, "fixture.toml", "[[packet]]\nengine = \"telegram\"\n")
	_, err = execute(t, "run", bad)
	assert.ErrorIs(t, err, protocol.ErrInvalidEngineType)

	_, err = execute(t, "run")
	assert.Error(t, err, "a fixture path is required")
}

func TestFixturePackets(t *testing.T) {
	typ, id := 3, uint64(0)
	fix := fixture{Packets: []fixturePacket{
		{Type: &typ, ID: &id, Data: `["ok"]`},
		{Engine: "4"},
	}}

	pacs, err := fix.packets()
	require.NoError(t, err)
	require.Len(t, pacs, 2)

	assert.Equal(t, `packet{engine:message type:ack id:0 data:["ok"]}`, pacs[0].String())
	assert.Equal(t, `packet{engine:message type:none}`, pacs[1].String())

	bad := -1
	_, err = fixture{Packets: []fixturePacket{{Type: &bad}}}.packets()
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	have, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "sioreplay dev (none)\n", have)
}
