// bicictl es la CLI de operación del gateway: se loguea contra el propio
// gateway (cookie de sesión en memoria) y ejecuta operaciones del
// backoffice. Pensada para smoke tests y tareas puntuales, no para scripts
// de larga vida.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

type client struct {
	BaseURL   string
	OutFormat string // "json" | "text"
	HTTP      *http.Client
}

func (c *client) do(method, path string, body []byte) (int, []byte, error) {
	url := strings.TrimRight(c.BaseURL, "/") + path
	req, err := http.NewRequest(method, url, bytes.NewReader(body))
	if err != nil {
		return 0, nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()
	b, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, b, nil
}

func (c *client) login(email, password string) error {
	payload, _ := json.Marshal(map[string]string{"email": email, "password": password})
	status, body, err := c.do("POST", "/login", payload)
	if err != nil {
		return err
	}
	if status/100 != 2 {
		return fmt.Errorf("login falló: status=%d body=%s", status, string(body))
	}
	return nil
}

func (c *client) print(status int, body []byte) {
	if c.OutFormat == "json" {
		var v any
		if json.Unmarshal(body, &v) == nil {
			p, _ := json.MarshalIndent(v, "", "  ")
			fmt.Println(string(p))
			return
		}
	}
	if len(body) > 0 {
		fmt.Println(string(body))
	} else {
		fmt.Printf("status=%d\n", status)
	}
}

// get hace GET y falla con status no-2xx.
func (c *client) get(path string) error {
	status, body, err := c.do("GET", path, nil)
	if err != nil {
		return err
	}
	if status/100 != 2 {
		return fmt.Errorf("status=%d body=%s", status, string(body))
	}
	c.print(status, body)
	return nil
}

func main() {
	var (
		baseURL  = envOr("BICIHUB_URL", "http://localhost:8080")
		email    = envOr("BICIHUB_EMAIL", "")
		password = envOr("BICIHUB_PASSWORD", "")
		tenantID = envOr("BICIHUB_TENANT", "")
		out      = envOr("BICIHUB_OUT", "text")
	)

	jar, _ := cookiejar.New(nil)
	cl := &client{
		BaseURL:   baseURL,
		OutFormat: out,
		HTTP:      &http.Client{Jar: jar, Timeout: 30 * time.Second},
	}

	root := &cobra.Command{
		Use:   "bicictl",
		Short: "CLI de operación del gateway bicihub",
	}
	root.PersistentFlags().StringVar(&baseURL, "url", baseURL, "URL base del gateway (env BICIHUB_URL)")
	root.PersistentFlags().StringVar(&tenantID, "tenant", tenantID, "tenant a seleccionar antes de operar (env BICIHUB_TENANT)")
	root.PersistentFlags().StringVar(&out, "out", out, "Formato de salida: json|text")

	// ensure loguea (si hay credenciales) y selecciona tenant.
	ensure := func(needsAuth bool) error {
		cl.BaseURL = baseURL
		cl.OutFormat = out
		if needsAuth {
			if email == "" || password == "" {
				return fmt.Errorf("faltan credenciales (env BICIHUB_EMAIL / BICIHUB_PASSWORD)")
			}
			if err := cl.login(email, password); err != nil {
				return err
			}
		}
		if tenantID != "" {
			payload, _ := json.Marshal(map[string]string{"tenantId": tenantID})
			if status, body, err := cl.do("POST", "/tenants/select", payload); err != nil {
				return err
			} else if status/100 != 2 {
				return fmt.Errorf("tenant select falló: status=%d body=%s", status, string(body))
			}
		}
		return nil
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "ping",
			Short: "Readiness del gateway",
			RunE: func(cmd *cobra.Command, args []string) error {
				return cl.get("/readyz")
			},
		},
		&cobra.Command{
			Use:   "tenants",
			Short: "Lista los tenants disponibles",
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := ensure(false); err != nil {
					return err
				}
				return cl.get("/tenants")
			},
		},
		&cobra.Command{
			Use:   "bikes",
			Short: "Lista el catálogo del tenant activo",
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := ensure(false); err != nil {
					return err
				}
				return cl.get("/bikes")
			},
		},
		&cobra.Command{
			Use:   "orders",
			Short: "Lista las órdenes (requiere admin)",
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := ensure(true); err != nil {
					return err
				}
				return cl.get("/admin/orders")
			},
		},
		&cobra.Command{
			Use:   "modules",
			Short: "Lista los módulos del tenant activo (requiere admin)",
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := ensure(true); err != nil {
					return err
				}
				return cl.get("/admin/modules")
			},
		},
		&cobra.Command{
			Use:   "stats",
			Short: "Snapshot operativo del gateway (requiere admin)",
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := ensure(true); err != nil {
					return err
				}
				return cl.get("/admin/stats")
			},
		},
	)

	var orderStatus string
	setStatusCmd := &cobra.Command{
		Use:   "order-status <orderID>",
		Short: "Cambia el estado de una orden (requiere admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if orderStatus == "" {
				return fmt.Errorf("falta --status (pending|paid|shipped|cancelled)")
			}
			if err := ensure(true); err != nil {
				return err
			}
			payload, _ := json.Marshal(map[string]string{"status": orderStatus})
			status, body, err := cl.do("PATCH", "/admin/orders/"+args[0]+"/status", payload)
			if err != nil {
				return err
			}
			if status/100 != 2 {
				return fmt.Errorf("status=%d body=%s", status, string(body))
			}
			cl.print(status, body)
			return nil
		},
	}
	setStatusCmd.Flags().StringVar(&orderStatus, "status", "", "estado destino")
	root.AddCommand(setStatusCmd)

	approveCmd := &cobra.Command{
		Use:   "approve-comment <commentID>",
		Short: "Aprueba un comentario pendiente (requiere admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ensure(true); err != nil {
				return err
			}
			status, body, err := cl.do("PATCH", "/admin/comments/"+args[0]+"/approve", nil)
			if err != nil {
				return err
			}
			if status/100 != 2 {
				return fmt.Errorf("status=%d body=%s", status, string(body))
			}
			cl.print(status, body)
			return nil
		},
	}
	root.AddCommand(approveCmd)

	var createFile string
	createCmd := &cobra.Command{
		Use:   "create <recurso>",
		Short: "Crea un recurso de backoffice desde un JSON (requiere admin)",
		Long:  "Recursos: settings, modules, bikes, categories, tenants. El payload se lee de --file o de stdin.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := readPayload(createFile)
			if err != nil {
				return err
			}
			if err := ensure(true); err != nil {
				return err
			}
			status, body, err := cl.do("POST", "/admin/"+args[0], payload)
			if err != nil {
				return err
			}
			if status/100 != 2 {
				return fmt.Errorf("status=%d body=%s", status, string(body))
			}
			cl.print(status, body)
			return nil
		},
	}
	createCmd.Flags().StringVar(&createFile, "file", "", "archivo JSON con el recurso (default: stdin)")
	root.AddCommand(createCmd)

	root.AddCommand(&cobra.Command{
		Use:   "delete <recurso> <id>",
		Short: "Borra un recurso de backoffice (requiere admin)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ensure(true); err != nil {
				return err
			}
			status, body, err := cl.do("DELETE", "/admin/"+args[0]+"/"+args[1], nil)
			if err != nil {
				return err
			}
			if status/100 != 2 {
				return fmt.Errorf("status=%d body=%s", status, string(body))
			}
			cl.print(status, body)
			return nil
		},
	})

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// readPayload lee el JSON del recurso desde un archivo o stdin y valida
// que sea JSON bien formado antes de mandarlo.
func readPayload(file string) ([]byte, error) {
	var (
		b   []byte
		err error
	)
	if file != "" {
		b, err = os.ReadFile(file)
	} else {
		b, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return nil, err
	}
	if !json.Valid(b) {
		return nil, fmt.Errorf("el payload no es JSON válido")
	}
	return b, nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
