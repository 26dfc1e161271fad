package main

import (
	"crypto/tls"
	"crypto/x509"
	"encoding/pem"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseHosts(t *testing.T) {
	h := parseHosts("")
	require.Equal(t, []string{"localhost"}, h.dnsNames)
	require.Len(t, h.ips, 2)

	h = parseHosts("10.0.0.1, engel.example.com,")
	require.Equal(t, []net.IP{net.ParseIP("10.0.0.1")}, h.ips)
	require.Equal(t, []string{"engel.example.com"}, h.dnsNames)
}

func TestGenerate(t *testing.T) {
	now := time.Now()
	certPEM, keyPEM, err := generate(parseHosts("engel.example.com,10.0.0.1"), now)
	require.NoError(t, err)

	_, err = tls.X509KeyPair(certPEM, keyPEM)
	require.NoError(t, err)

	block, _ := pem.Decode(certPEM)
	require.NotNil(t, block)
	cert, err := x509.ParseCertificate(block.Bytes)
	require.NoError(t, err)
	require.NoError(t, cert.VerifyHostname("engel.example.com"))
	require.NoError(t, cert.VerifyHostname("10.0.0.1"))
	require.Equal(t, []string{"Engelsystem"}, cert.Subject.Organization)
}
