package handshake

import (
	"github.com/vlet/tls12/wire"
)

// Extension type codes [rfc6066]. Only server_name is produced or
// interpreted; any other extension type is passed through unparsed.
const extensionServerName = 0x0000

const serverNameTypeHostName = 0

// Extensions is the parsed ClientHello/ServerHello extensions block. Only
// ServerName (SNI) is extracted; every other extension is ignored.
type Extensions struct {
	HasServerName bool
	ServerName    string
}

// ParseExtensions reads an extensions block (already stripped of its
// outer u16 length prefix) and extracts ServerName if present.
func ParseExtensions(body []byte) (Extensions, error) {
	var ext Extensions
	offset := 0
	for offset < len(body) {
		next, extType, err := wire.ParseUint16(body, offset)
		if err != nil {
			return ext, err
		}
		offset = next
		var extBody []byte
		offset, extBody, err = wire.ParseUint16Length(body, offset)
		if err != nil {
			return ext, err
		}
		if extType == extensionServerName {
			name, err := parseServerNameList(extBody)
			if err == nil && name != "" {
				ext.HasServerName = true
				ext.ServerName = name
			}
		}
	}
	return ext, nil
}

func parseServerNameList(body []byte) (string, error) {
	_, listBody, err := wire.ParseUint16Length(body, 0)
	if err != nil {
		return "", err
	}
	inner := 0
	for inner < len(listBody) {
		next, nameType, err := wire.ParseByte(listBody, inner)
		if err != nil {
			return "", err
		}
		inner = next
		var name []byte
		inner, name, err = wire.ParseUint16Length(listBody, inner)
		if err != nil {
			return "", err
		}
		if nameType == serverNameTypeHostName {
			return string(name), nil
		}
	}
	return "", nil
}

// WriteServerNameExtension appends a ServerName extension advertising
// name, used by the client to signal SNI.
func WriteServerNameExtension(dst []byte, name string) []byte {
	dst = append(dst, 0x00, 0x00) // extension type: server_name

	dst, extMark := wire.MarkUint16Offset(dst)
	dst, listMark := wire.MarkUint16Offset(dst)
	dst = append(dst, serverNameTypeHostName)
	dst = wire.AppendUint16Length(dst, []byte(name))
	wire.FillUint16Offset(dst, listMark)
	wire.FillUint16Offset(dst, extMark)
	return dst
}
