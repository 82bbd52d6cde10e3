package config

import "testing"

func TestConfigFile(t *testing.T) {
	if err := testConfig(); err != nil {
		t.Errorf("could not create config %v", err)
	}

	//api config:
	if ApiUrl() != "http://localhost:8080" {
		t.Errorf("expected http://localhost:8080 got %v", ApiUrl())
	}
	if ApiTimeout() != 30 {
		t.Errorf("expected 30 got %v", ApiTimeout())
	}

	//server config:
	if ServerPort() != 8060 {
		t.Errorf("expected 8060 got %v", ServerPort())
	}
	if ServerPrefix() != "/" {
		t.Errorf("expected / got %v", ServerPrefix())
	}
	if ServerHost() != "localhost" {
		t.Errorf("expected localhost got %v", ServerHost())
	}
	if ServerAddr() != "localhost:8060" {
		t.Errorf("expected localhost:8060 got %v", ServerAddr())
	}

	//session config:
	if SessionCookieName() != "pfolio-session" {
		t.Errorf("expected pfolio-session got %v", SessionCookieName())
	}
	if SessionAuthcKey() != "authKey" {
		t.Errorf("expected authKey got %v", SessionAuthcKey())
	}
	if SessionEncKey() != "encKey" {
		t.Errorf("expected encKey got %v", SessionEncKey())
	}

	//service config:
	if ServiceRoot() != ".pfolio" {
		t.Errorf("expected .pfolio got %v", ServiceRoot())
	}
	if TokenFile() != ".pfolio/token.json" {
		t.Errorf("expected .pfolio/token.json got %v", TokenFile())
	}
}
