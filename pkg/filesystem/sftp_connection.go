package filesystem

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/agent"
	"golang.org/x/crypto/ssh/knownhosts"
)

// ConnectOptions describes an SFTP endpoint.
type ConnectOptions struct {
	Host string
	Port int
	User string
	// KnownHostsFile overrides ~/.ssh/known_hosts. When neither exists host
	// keys are not verified.
	KnownHostsFile string
}

// SFTPConnection holds an active SSH/SFTP connection.
type SFTPConnection struct {
	sshClient  *ssh.Client
	sftpClient *sftp.Client
	opts       ConnectOptions
}

// Connect establishes an SSH connection and opens an SFTP session.
// It authenticates with the SSH agent and the default SSH keys.
func Connect(opts ConnectOptions) (*SFTPConnection, error) {
	authMethods := sshAuthMethods()
	if len(authMethods) == 0 {
		return nil, errNoAuthMethods
	}

	hostKeyCallback, err := hostKeyVerifier(opts.KnownHostsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load known hosts: %w", err)
	}

	config := &ssh.ClientConfig{
		User:            opts.User,
		Auth:            authMethods,
		HostKeyCallback: hostKeyCallback,
	}

	addr := net.JoinHostPort(opts.Host, strconv.Itoa(opts.Port))

	sshClient, err := ssh.Dial("tcp", addr, config)
	if err != nil {
		return nil, fmt.Errorf("SSH connection to %s failed: %w", addr, err)
	}

	sftpClient, err := sftp.NewClient(sshClient)
	if err != nil {
		_ = sshClient.Close()
		return nil, fmt.Errorf("SFTP session creation failed: %w", err)
	}

	return &SFTPConnection{
		sshClient:  sshClient,
		sftpClient: sftpClient,
		opts:       opts,
	}, nil
}

// Client returns the underlying SFTP client.
func (c *SFTPConnection) Client() *sftp.Client {
	return c.sftpClient
}

// Close closes the SFTP session and SSH connection.
func (c *SFTPConnection) Close() error {
	var errs []error

	if c.sftpClient != nil {
		errs = append(errs, c.sftpClient.Close())
	}

	if c.sshClient != nil {
		errs = append(errs, c.sshClient.Close())
	}

	return errors.Join(errs...)
}

// String identifies the endpoint as user@host:port.
func (c *SFTPConnection) String() string {
	return fmt.Sprintf("%s@%s:%d", c.opts.User, c.opts.Host, c.opts.Port)
}

// unexported variables.
var (
	errNoAuthMethods = errors.New("no SSH authentication methods available (tried SSH agent and default keys)")
)

func defaultSSHDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(homeDir, ".ssh")
}

// hostKeyVerifier checks host keys against a known_hosts file when one is available.
func hostKeyVerifier(knownHostsFile string) (ssh.HostKeyCallback, error) {
	if knownHostsFile == "" {
		if sshDir := defaultSSHDir(); sshDir != "" {
			knownHostsFile = filepath.Join(sshDir, "known_hosts")
		}
	}

	if knownHostsFile == "" {
		return ssh.InsecureIgnoreHostKey(), nil //nolint:gosec // no known_hosts to verify against
	}

	if _, err := os.Stat(knownHostsFile); os.IsNotExist(err) {
		return ssh.InsecureIgnoreHostKey(), nil //nolint:gosec // no known_hosts to verify against
	}

	return knownhosts.New(knownHostsFile)
}

// sshAuthMethods returns SSH authentication methods in priority order:
// the SSH agent, then unencrypted default keys.
func sshAuthMethods() []ssh.AuthMethod {
	var authMethods []ssh.AuthMethod

	if agentAuth := trySSHAgent(); agentAuth != nil {
		authMethods = append(authMethods, agentAuth)
	}

	if signers := loadDefaultKeys(defaultSSHDir()); len(signers) > 0 {
		authMethods = append(authMethods, ssh.PublicKeys(signers...))
	}

	return authMethods
}

func trySSHAgent() ssh.AuthMethod {
	socket := os.Getenv("SSH_AUTH_SOCK")
	if socket == "" {
		return nil
	}

	conn, err := net.Dial("unix", socket)
	if err != nil {
		return nil
	}

	return ssh.PublicKeysCallback(agent.NewClient(conn).Signers)
}

// loadDefaultKeys parses id_ed25519, id_rsa and id_ecdsa from sshDir.
// Missing, unreadable and passphrase-protected keys are skipped.
func loadDefaultKeys(sshDir string) []ssh.Signer {
	if sshDir == "" {
		return nil
	}

	var signers []ssh.Signer

	for _, name := range []string{"id_ed25519", "id_rsa", "id_ecdsa"} {
		keyData, err := os.ReadFile(filepath.Join(sshDir, name))
		if err != nil {
			continue
		}

		signer, err := ssh.ParsePrivateKey(keyData)
		if err != nil {
			continue
		}

		signers = append(signers, signer)
	}

	return signers
}
