package main

import (
	"encoding/base64"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/njones/sioclient/protocol"
)

type fixture struct {
	Packets []fixturePacket `toml:"packet"`
}

// fixturePacket is one [[packet]] table. Type and ID are optional; DataBase64
// is for binary payloads such as msgpack.
type fixturePacket struct {
	Engine     string  `toml:"engine"`
	Type       *int    `toml:"type"`
	ID         *uint64 `toml:"id"`
	Data       string  `toml:"data"`
	DataBase64 string  `toml:"data_base64"`
}

func loadFixture(path string) ([]protocol.Packet, error) {
	var fix fixture
	if _, err := toml.DecodeFile(path, &fix); err != nil {
		return nil, fmt.Errorf("load fixture %s: %w", path, err)
	}
	return fix.packets()
}

func (fix fixture) packets() ([]protocol.Packet, error) {
	out := make([]protocol.Packet, 0, len(fix.Packets))
	for i, fp := range fix.Packets {
		pac, err := fp.packet()
		if err != nil {
			return nil, fmt.Errorf("packet %d: %w", i+1, err)
		}
		out = append(out, pac)
	}
	return out, nil
}

func (fp fixturePacket) packet() (protocol.Packet, error) {
	engine := protocol.MessagePacket
	if fp.Engine != "" {
		et, err := protocol.ParseEngineType(fp.Engine)
		if err != nil {
			return protocol.Packet{}, err
		}
		engine = et
	}

	pac := protocol.NewPacket(engine)
	if fp.Type != nil {
		if *fp.Type < 0 || *fp.Type > 255 {
			return protocol.Packet{}, fmt.Errorf("type %d out of range", *fp.Type)
		}
		pac = pac.WithType(protocol.Type(*fp.Type))
	}
	if fp.ID != nil {
		pac = pac.WithAckID(*fp.ID)
	}

	switch {
	case fp.DataBase64 != "":
		data, err := base64.StdEncoding.DecodeString(fp.DataBase64)
		if err != nil {
			return protocol.Packet{}, fmt.Errorf("data_base64: %w", err)
		}
		pac = pac.WithData(data)
	case fp.Data != "":
		pac = pac.WithStringData(fp.Data)
	}
	return pac, nil
}
