package card

// The card layouts. Each is a full HTML document sized for a 700x400 business
// card with interchangeable text and color slots; the renderer screenshots the
// .card element for pixel-perfect output.

const templateCleanProfessional = `<!DOCTYPE html>
<html>
<head><style>
@import url('https://fonts.googleapis.com/css2?family=Inter:wght@400;600;700&display=swap');
* { margin: 0; padding: 0; box-sizing: border-box; }
.card {
    width: 700px; height: 400px;
    background: #ffffff;
    border-radius: 12px;
    padding: 48px;
    font-family: 'Inter', sans-serif;
    display: flex;
    flex-direction: column;
    justify-content: space-between;
    box-shadow: 0 4px 24px rgba(0,0,0,0.08);
    position: relative;
    overflow: hidden;
}
.card::before {
    content: '';
    position: absolute;
    top: 0; left: 0;
    width: 8px; height: 100%;
    background: {{.AccentColor}};
}
.top { display: flex; justify-content: space-between; align-items: flex-start; }
.name { font-size: 28px; font-weight: 700; color: #1a1a1a; }
.trade { font-size: 16px; color: #666; margin-top: 4px; font-weight: 400; }
.license { font-size: 12px; color: #999; margin-top: 8px; }
.icon { width: 56px; height: 56px; background: {{.AccentColor}}; border-radius: 12px;
    display: flex; align-items: center; justify-content: center; font-size: 28px; }
.bottom { display: flex; gap: 32px; align-items: center; }
.contact-item { display: flex; align-items: center; gap: 8px; font-size: 14px; color: #444; }
.contact-icon { width: 20px; height: 20px; background: {{.AccentColor}}15; border-radius: 50%;
    display: flex; align-items: center; justify-content: center; font-size: 11px; }
{{.WatermarkCSS}}
</style></head>
<body>
<div class="card">
    <div class="top">
        <div>
            <div class="name">{{.BusinessName}}</div>
            <div class="trade">{{.TradeDescription}}</div>
            <div class="license">{{.LicenseText}}</div>
        </div>
        <div class="icon">{{.TradeIcon}}</div>
    </div>
    <div class="bottom">
        <div class="contact-item">
            <div class="contact-icon">📞</div>
            {{.Phone}}
        </div>
        <div class="contact-item">
            <div class="contact-icon">✉️</div>
            {{.Email}}
        </div>
        <div class="contact-item">
            <div class="contact-icon">📍</div>
            {{.Location}}
        </div>
    </div>
    {{.WatermarkHTML}}
</div>
</body></html>
`

const templateDarkBold = `<!DOCTYPE html>
<html>
<head><style>
@import url('https://fonts.googleapis.com/css2?family=Montserrat:wght@400;600;800&display=swap');
* { margin: 0; padding: 0; box-sizing: border-box; }
.card {
    width: 700px; height: 400px;
    background: linear-gradient(135deg, #1a1a2e 0%, #16213e 100%);
    border-radius: 12px;
    padding: 48px;
    font-family: 'Montserrat', sans-serif;
    display: flex;
    flex-direction: column;
    justify-content: space-between;
    position: relative;
    overflow: hidden;
}
.card::after {
    content: '';
    position: absolute;
    top: -50%; right: -20%;
    width: 400px; height: 400px;
    background: {{.AccentColor}}15;
    border-radius: 50%;
}
.name { font-size: 32px; font-weight: 800; color: #ffffff; text-transform: uppercase;
    letter-spacing: 1px; position: relative; z-index: 1; }
.trade { font-size: 15px; color: {{.AccentColor}}; margin-top: 8px; font-weight: 600;
    text-transform: uppercase; letter-spacing: 3px; position: relative; z-index: 1; }
.license { font-size: 12px; color: #ffffff60; margin-top: 12px; position: relative; z-index: 1; }
.divider { width: 60px; height: 3px; background: {{.AccentColor}}; position: relative; z-index: 1; }
.bottom { display: flex; gap: 28px; position: relative; z-index: 1; }
.contact-item { font-size: 14px; color: #ffffffcc; display: flex; align-items: center; gap: 8px; }
.contact-icon { color: {{.AccentColor}}; font-size: 16px; }
{{.WatermarkCSS}}
</style></head>
<body>
<div class="card">
    <div>
        <div class="name">{{.BusinessName}}</div>
        <div class="trade">{{.TradeDescription}}</div>
        <div class="license">{{.LicenseText}}</div>
    </div>
    <div class="divider"></div>
    <div class="bottom">
        <div class="contact-item"><span class="contact-icon">📞</span> {{.Phone}}</div>
        <div class="contact-item"><span class="contact-icon">✉️</span> {{.Email}}</div>
        <div class="contact-item"><span class="contact-icon">📍</span> {{.Location}}</div>
    </div>
    {{.WatermarkHTML}}
</div>
</body></html>
`

const templateTradeBadge = `<!DOCTYPE html>
<html>
<head><style>
@import url('https://fonts.googleapis.com/css2?family=Archivo:wght@400;600;700;900&display=swap');
* { margin: 0; padding: 0; box-sizing: border-box; }
.card {
    width: 700px; height: 400px;
    background: #f8f7f4;
    border-radius: 12px;
    padding: 48px;
    font-family: 'Archivo', sans-serif;
    display: flex;
    align-items: center;
    gap: 40px;
    position: relative;
    overflow: hidden;
}
.badge {
    width: 140px; height: 140px;
    background: {{.AccentColor}};
    border-radius: 50%;
    display: flex;
    align-items: center;
    justify-content: center;
    flex-shrink: 0;
    box-shadow: 0 8px 32px {{.AccentColor}}40;
}
.badge-icon { font-size: 56px; }
.info { flex: 1; }
.name { font-size: 26px; font-weight: 900; color: #1a1a1a; line-height: 1.1; }
.trade { font-size: 14px; color: {{.AccentColor}}; margin-top: 6px; font-weight: 700;
    text-transform: uppercase; letter-spacing: 2px; }
.license { font-size: 12px; color: #999; margin-top: 8px; padding-top: 8px;
    border-top: 2px solid #eee; }
.contacts { margin-top: 20px; display: flex; flex-direction: column; gap: 6px; }
.contact-item { font-size: 14px; color: #555; }
{{.WatermarkCSS}}
</style></head>
<body>
<div class="card">
    <div class="badge"><span class="badge-icon">{{.TradeIcon}}</span></div>
    <div class="info">
        <div class="name">{{.BusinessName}}</div>
        <div class="trade">{{.TradeDescription}}</div>
        <div class="license">{{.LicenseText}}</div>
        <div class="contacts">
            <div class="contact-item">📞 {{.Phone}}</div>
            <div class="contact-item">✉️ {{.Email}}</div>
            <div class="contact-item">📍 {{.Location}}</div>
        </div>
    </div>
    {{.WatermarkHTML}}
</div>
</body></html>
`

// watermarkCSS and watermarkHTML are injected into preview renders; final
// renders substitute empty strings in the same slots, so the two variants
// differ only by the overlay.
const watermarkCSS = `.watermark {
    position: absolute;
    top: 50%; left: 50%;
    transform: translate(-50%, -50%) rotate(-30deg);
    font-size: 48px;
    font-weight: 900;
    color: rgba(0,0,0,0.08);
    letter-spacing: 8px;
    text-transform: uppercase;
    white-space: nowrap;
    z-index: 10;
    pointer-events: none;
}`

const watermarkHTML = `<div class="watermark">PREVIEW</div>`
