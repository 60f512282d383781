package swagger

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/swaggo/swag"
)

type SwaggerConfig struct {
	Title         string
	SwaggerDocURL string
	AuthURL       string
}

const swaggerHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>{{.Title}}</title>
    <link rel="stylesheet" type="text/css" href="https://unpkg.com/swagger-ui-dist@5.17.14/swagger-ui.css" />
    <style>
        body { margin: 0; background: #fafafa; }
        .login-bar { display: flex; gap: 8px; padding: 12px 20px; background: #f0f2f5; border-bottom: 1px solid #dee2e6; }
        .login-bar input { padding: 6px 10px; border: 1px solid #d9d9d9; border-radius: 4px; }
        .login-bar button { padding: 6px 14px; background: #4990e2; color: #fff; border: 0; border-radius: 4px; cursor: pointer; }
        .login-bar span { align-self: center; font-size: 12px; color: #555; }
    </style>
</head>
<body>
    <div class="login-bar">
        <input type="email" id="login-email" placeholder="Email" />
        <input type="password" id="login-password" placeholder="Password" />
        <button id="login-button" onclick="performAuthentication()">Login</button>
        <span id="login-status"></span>
    </div>
    <div id="swagger-ui" data-doc-url="{{.SwaggerDocURL}}" data-auth-url="{{.AuthURL}}"></div>
    <script src="https://unpkg.com/swagger-ui-dist@5.17.14/swagger-ui-bundle.js"></script>
    <script>
        const root = document.getElementById('swagger-ui');
        window.onload = function() {
            window.ui = SwaggerUIBundle({
                url: root.dataset.docUrl,
                dom_id: '#swagger-ui',
                deepLinking: true,
                persistAuthorization: true
            });
        };

        window.performAuthentication = async function() {
            const email = document.getElementById('login-email').value.trim();
            const password = document.getElementById('login-password').value;
            const status = document.getElementById('login-status');
            if (!email || !password) {
                status.textContent = 'Email and password are required';
                return;
            }
            try {
                const response = await fetch(root.dataset.authUrl, {
                    method: 'POST',
                    headers: { 'Content-Type': 'application/json' },
                    body: JSON.stringify({ email: email, password: password })
                });
                const body = await response.json();
                const token = body.data && body.data.token;
                if (!response.ok || !token) {
                    throw new Error(body.message || 'Authentication failed');
                }
                window.ui.preauthorizeApiKey('BearerAuth', 'Bearer ' + token);
                status.textContent = 'Authorized as ' + email;
            } catch (error) {
                status.textContent = error.message;
            }
        };
    </script>
</body>
</html>`

// ServeSwaggerUI serves the Swagger UI with a login bar that fills the bearer token
func ServeSwaggerUI(config SwaggerConfig) gin.HandlerFunc {
	if config.Title == "" {
		config.Title = "API Documentation"
	}
	if config.SwaggerDocURL == "" {
		config.SwaggerDocURL = "/swagger/doc.json"
	}
	if config.AuthURL == "" {
		config.AuthURL = "/api/v1/auth/login"
	}

	tmpl := template.Must(template.New("swagger").Parse(swaggerHTML))

	return func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		if err := tmpl.Execute(c.Writer, config); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render Swagger UI"})
		}
	}
}

// ServeDoc serves the OpenAPI document registered with swag under name
func ServeDoc(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := swag.ReadDoc(name)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "API documentation is not available"})
			return
		}
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(doc))
	}
}
