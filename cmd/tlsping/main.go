// Command tlsping wires a Client and Server together over an in-process
// byte pipe and drives one handshake followed by a ping/pong exchange, for
// manual smoke-testing of the engine package.
package main

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"flag"
	"fmt"
	"log"
	"math/big"
	"time"

	"github.com/vlet/tls12/ciphersuite"
	"github.com/vlet/tls12/engine"
)

func main() {
	suiteFlag := flag.Uint("suite", uint(ciphersuite.TLS_RSA_WITH_AES_128_CBC_SHA),
		"cipher suite ID the client offers (decimal)")
	flag.Parse()

	certDER, priv, err := generateSelfSignedCert()
	if err != nil {
		log.Fatalf("tlsping: generating demo certificate: %v", err)
	}

	server := engine.NewServer(certDER, priv)
	client := engine.NewClient()
	client.Suites = []ciphersuite.ID{ciphersuite.ID(*suiteFlag)}

	var serverConn, clientConn *engine.Context

	serverConn = server.NewConnection(engine.Callbacks{
		OnData: func(data []byte) {
			fmt.Printf("server received: %q, echoing\n", data)
			serverConn.Send(data)
		},
		OnHandshakeFinish: func() { log.Println("server: handshake finished") },
		OnChangeState:     func(prev, next engine.State) { log.Printf("server: %s -> %s", prev, next) },
		OnError:           func(code byte) { log.Printf("server: fatal alert %d", code) },
	})

	pinged := false
	clientConn = client.NewConnection("tlsping.example", engine.Callbacks{
		OnData: func(data []byte) {
			fmt.Printf("client received: %q\n", data)
			clientConn.Close()
		},
		OnHandshakeFinish: func() {
			log.Println("client: handshake finished")
			pinged = true
			clientConn.Send([]byte("ping"))
		},
		OnChangeState: func(prev, next engine.State) { log.Printf("client: %s -> %s", prev, next) },
		OnError:       func(code byte) { log.Printf("client: fatal alert %d", code) },
	})

	// Drive the handshake and the ping/pong exchange by repeatedly draining
	// each side's outbound queue into the other's Feed, the way a real
	// socket pair would carry the same bytes. Bounded so a protocol bug
	// can't spin the demo forever.
	for round := 0; round < 64; round++ {
		pump(clientConn, serverConn)
		pump(serverConn, clientConn)
		if clientConn.Shutdown() && serverConn.Shutdown() {
			break
		}
	}
	if !pinged {
		log.Println("tlsping: handshake never completed")
	}
	if !clientConn.Shutdown() || !serverConn.Shutdown() {
		log.Println("tlsping: connection did not reach a clean close")
	}
}

// pump drains every record from.src and feeds it to dst, the loopback
// transport a real socket would otherwise provide.
func pump(src, dst *engine.Context) {
	for {
		rec, ok := src.NextRecord()
		if !ok {
			return
		}
		dst.Feed(rec)
	}
}

func generateSelfSignedCert() (certDER []byte, priv *rsa.PrivateKey, err error) {
	priv, err = rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return nil, nil, err
	}
	template := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "tlsping.example"},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(24 * time.Hour),
		KeyUsage:     x509.KeyUsageKeyEncipherment | x509.KeyUsageDigitalSignature,
	}
	der, err := x509.CreateCertificate(rand.Reader, template, template, &priv.PublicKey, priv)
	if err != nil {
		return nil, nil, err
	}
	return der, priv, nil
}
