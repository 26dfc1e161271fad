// Command certgen writes a self signed certificate and key to the paths the
// server config names, for running the server with tls = true.
package main

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"errors"
	"flag"
	"fmt"
	"math/big"
	"net"
	"os"
	"strings"
	"time"

	"github.com/goserg/engelserver/internal/config"
)

const keyBits = 4096

func main() {
	if err := run(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

func run() error {
	var serverConfigPath, hostsFlag string
	flag.StringVar(&serverConfigPath, "server-config", "configs/server.toml", "path to server configs")
	flag.StringVar(&hostsFlag, "hosts", "", "comma separated ips and dns names, localhost by default")
	flag.Parse()

	cfg, err := config.New(serverConfigPath)
	if err != nil {
		return err
	}
	certFile, keyFile := cfg.Server.CertFile, cfg.Server.KeyFile
	if !isMissing(certFile) || !isMissing(keyFile) {
		return errors.New("cert exists")
	}

	certPEM, keyPEM, err := generate(parseHosts(hostsFlag), time.Now())
	if err != nil {
		return err
	}
	if err := os.WriteFile(certFile, certPEM, 0o600); err != nil {
		return err
	}
	return os.WriteFile(keyFile, keyPEM, 0o600)
}

type hosts struct {
	ips      []net.IP
	dnsNames []string
}

func parseHosts(value string) hosts {
	if value == "" {
		return hosts{
			ips:      []net.IP{net.IPv4(127, 0, 0, 1), net.IPv6loopback},
			dnsNames: []string{"localhost"},
		}
	}
	var h hosts
	for _, host := range strings.Split(value, ",") {
		host = strings.TrimSpace(host)
		if ip := net.ParseIP(host); ip != nil {
			h.ips = append(h.ips, ip)
		} else if host != "" {
			h.dnsNames = append(h.dnsNames, host)
		}
	}
	return h
}

var subject = pkix.Name{
	Organization: []string{"Engelsystem"},
	CommonName:   "engelserver",
}

// generate issues a certificate for h signed by a fresh CA. Both are PEM
// encoded.
func generate(h hosts, now time.Time) (certPEM, keyPEM []byte, err error) {
	ca := &x509.Certificate{
		SerialNumber:          randomSerial(),
		Subject:               subject,
		NotBefore:             now,
		NotAfter:              now.AddDate(10, 0, 0),
		IsCA:                  true,
		ExtKeyUsage:           []x509.ExtKeyUsage{x509.ExtKeyUsageClientAuth, x509.ExtKeyUsageServerAuth},
		KeyUsage:              x509.KeyUsageDigitalSignature | x509.KeyUsageCertSign,
		BasicConstraintsValid: true,
	}
	caKey, err := rsa.GenerateKey(rand.Reader, keyBits)
	if err != nil {
		return nil, nil, err
	}

	cert := &x509.Certificate{
		SerialNumber: randomSerial(),
		Subject:      subject,
		IPAddresses:  h.ips,
		DNSNames:     h.dnsNames,
		NotBefore:    now,
		NotAfter:     now.AddDate(1, 0, 0),
		SubjectKeyId: []byte{1, 2, 3, 4, 6},
		ExtKeyUsage:  []x509.ExtKeyUsage{x509.ExtKeyUsageClientAuth, x509.ExtKeyUsageServerAuth},
		KeyUsage:     x509.KeyUsageDigitalSignature,
	}
	certKey, err := rsa.GenerateKey(rand.Reader, keyBits)
	if err != nil {
		return nil, nil, err
	}
	certBytes, err := x509.CreateCertificate(rand.Reader, cert, ca, &certKey.PublicKey, caKey)
	if err != nil {
		return nil, nil, err
	}

	certPEM = pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: certBytes})
	keyPEM = pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(certKey)})
	return certPEM, keyPEM, nil
}

func isMissing(path string) bool {
	_, err := os.Stat(path)
	return errors.Is(err, os.ErrNotExist)
}

func randomSerial() *big.Int {
	limit := new(big.Int).Lsh(big.NewInt(1), 62)
	i, err := rand.Int(rand.Reader, limit)
	if err != nil {
		panic(err)
	}
	return i
}
