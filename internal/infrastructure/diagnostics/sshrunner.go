package diagnostics

import (
	"bytes"
	"context"
	"fmt"
	"net"
	"time"

	"golang.org/x/crypto/ssh"
)

// SSHRunner executes probe commands over a fresh SSH connection per call.
// Host keys are not verified: the registry holds throwaway diagnostic
// accounts on customer machines whose keys rotate with reinstalls.
type SSHRunner struct {
	connectTimeout time.Duration
	probeTimeout   time.Duration
}

func NewSSHRunner(connectTimeout, probeTimeout time.Duration) *SSHRunner {
	if connectTimeout <= 0 {
		connectTimeout = 10 * time.Second
	}
	if probeTimeout <= 0 {
		probeTimeout = 15 * time.Second
	}
	return &SSHRunner{
		connectTimeout: connectTimeout,
		probeTimeout:   probeTimeout,
	}
}

// Run connects to target and executes command, returning combined
// stdout+stderr. Output is returned even when the remote command exits
// non-zero; the fallback chains inside the probe commands rely on that.
func (r *SSHRunner) Run(ctx context.Context, target Target, command string) (string, error) {
	config := &ssh.ClientConfig{
		User: target.User,
		Auth: []ssh.AuthMethod{
			ssh.Password(target.Password),
		},
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		Timeout:         r.connectTimeout,
	}

	addr := net.JoinHostPort(target.Host, fmt.Sprintf("%d", target.Port))

	dialCtx, cancel := context.WithTimeout(ctx, r.connectTimeout)
	defer cancel()

	conn, err := (&net.Dialer{}).DialContext(dialCtx, "tcp", addr)
	if err != nil {
		return "", fmt.Errorf("failed to dial %s: %w", addr, err)
	}

	sshConn, chans, reqs, err := ssh.NewClientConn(conn, addr, config)
	if err != nil {
		conn.Close()
		return "", fmt.Errorf("failed to establish ssh connection: %w", err)
	}
	client := ssh.NewClient(sshConn, chans, reqs)
	defer client.Close()

	session, err := client.NewSession()
	if err != nil {
		return "", fmt.Errorf("failed to open ssh session: %w", err)
	}
	defer session.Close()

	var output bytes.Buffer
	session.Stdout = &output
	session.Stderr = &output

	done := make(chan error, 1)
	go func() {
		done <- session.Run(command)
	}()

	probeCtx, cancelProbe := context.WithTimeout(ctx, r.probeTimeout)
	defer cancelProbe()

	select {
	case <-probeCtx.Done():
		session.Close()
		return "", fmt.Errorf("probe timed out after %s", r.probeTimeout)
	case err := <-done:
		if _, ok := err.(*ssh.ExitError); err != nil && !ok {
			return "", fmt.Errorf("failed to run probe: %w", err)
		}
		// Non-zero exit still produced usable output.
		return output.String(), nil
	}
}
