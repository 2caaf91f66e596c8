package render

const indexTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Policy Tracker - Chronology</title>
    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif; color: #2c3e50; background: #f8f9fa; line-height: 1.6; }
        .header { background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); color: white; padding: 2rem 0; }
        .container { max-width: 900px; margin: 0 auto; padding: 0 20px; }
        .nav-tabs { background: white; box-shadow: 0 2px 4px rgba(0,0,0,0.1); position: sticky; top: 0; }
        .nav-tabs .container { display: flex; gap: 2rem; }
        .nav-tab { padding: 1rem 0; cursor: pointer; border-bottom: 3px solid transparent; color: #666; }
        .nav-tab.active { color: #667eea; border-bottom-color: #667eea; }
        .filters { background: white; padding: 1rem; margin: 1rem 0; border-radius: 8px; }
        .tag { display: inline-block; margin: 2px; padding: 2px 10px; border-radius: 12px; background: #eef; cursor: pointer; font-size: 0.85rem; }
        .tag.active { background: #667eea; color: white; }
        .entry { background: white; padding: 1rem; margin: 0.5rem 0; border-radius: 8px; box-shadow: 0 1px 3px rgba(0,0,0,0.05); }
        .entry .date { color: #999; font-size: 0.85rem; }
        .entry a { color: #2980b9; text-decoration: none; }
        .entry a:hover { text-decoration: underline; }
        .entry .tags span { font-size: 0.75rem; background: #f0f0f5; border-radius: 10px; padding: 1px 8px; margin-right: 4px; }
    </style>
</head>
<body>
    <div class="header">
        <div class="container">
            <h1>Policy Tracker</h1>
            <div>{{.Total}} articles, chronological view</div>
        </div>
    </div>
    <div class="nav-tabs">
        <div class="container">
            <div class="nav-tab active">Chronology</div>
            <div class="nav-tab" onclick="window.location.href='summary.html'">Thematic Summary</div>
        </div>
    </div>
    <div class="container">
        <div class="filters">
            <div id="themes-container"></div>
            <div id="keywords-container"></div>
        </div>
        <div id="entries"></div>
    </div>
    <script>
        const diaryData = {{.Data}};
        let selectedThemes = new Set(diaryData.metadata.themes);
        let selectedKeywords = new Set(diaryData.metadata.keywords);

        function makeTag(name, set, container) {
            const el = document.createElement('span');
            el.className = 'tag active';
            el.textContent = name;
            el.onclick = () => {
                if (set.has(name)) { set.delete(name); el.classList.remove('active'); }
                else { set.add(name); el.classList.add('active'); }
                renderEntries();
            };
            container.appendChild(el);
        }

        diaryData.metadata.themes.forEach(t => makeTag(t, selectedThemes, document.getElementById('themes-container')));
        diaryData.metadata.keywords.forEach(k => makeTag(k, selectedKeywords, document.getElementById('keywords-container')));

        function renderEntries() {
            const root = document.getElementById('entries');
            root.innerHTML = '';
            diaryData.entries.forEach(entry => {
                const themeHit = entry.themes.some(t => selectedThemes.has(t));
                const keywordHit = entry.keywords.length === 0 || entry.keywords.some(k => selectedKeywords.has(k));
                if (!themeHit || !keywordHit) return;
                const div = document.createElement('div');
                div.className = 'entry';
                const date = entry.date ? '<span class="date">' + entry.date + '</span> ' : '';
                const tags = entry.themes.concat(entry.keywords).map(t => '<span>' + t + '</span>').join('');
                div.innerHTML = date + '<a href="' + entry.url + '">' + entry.title + '</a><div class="tags">' + tags + '</div>';
                root.appendChild(div);
            });
        }

        const params = new URLSearchParams(window.location.search);
        if (params.has('themes')) {
            selectedThemes = new Set(params.get('themes').split(',').filter(t => t));
        }
        renderEntries();
    </script>
</body>
</html>
`

const summaryTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Policy Tracker - Thematic Summary</title>
    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body { font-family: 'Georgia', 'Times New Roman', serif; line-height: 1.8; color: #2c3e50; background: #f8f9fa; }
        .header { background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); color: white; padding: 3rem 0; }
        .container { max-width: 900px; margin: 0 auto; padding: 0 20px; }
        h1 { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif; }
        .nav-tabs { background: white; box-shadow: 0 2px 4px rgba(0,0,0,0.1); position: sticky; top: 0; font-family: -apple-system, sans-serif; }
        .nav-tabs .container { display: flex; gap: 2rem; }
        .nav-tab { padding: 1rem 0; cursor: pointer; border-bottom: 3px solid transparent; color: #666; }
        .nav-tab.active { color: #667eea; border-bottom-color: #667eea; }
        .toc, .theme-section { background: white; padding: 2rem; margin: 2rem 0; border-radius: 8px; box-shadow: 0 2px 4px rgba(0,0,0,0.05); }
        .toc ul { list-style: none; }
        .toc a, .theme-section a { color: #667eea; text-decoration: none; }
        .theme-section h2 { border-bottom: 2px solid #667eea; padding-bottom: 0.5rem; margin-bottom: 0.5rem; font-family: -apple-system, sans-serif; }
        .view-all { display: inline-block; margin-top: 1rem; padding: 0.5rem 1rem; background: #667eea; color: white !important; border-radius: 4px; font-family: -apple-system, sans-serif; font-size: 0.9rem; }
        .footer { background: #2c3e50; color: white; padding: 2rem 0; margin-top: 4rem; text-align: center; font-family: -apple-system, sans-serif; }
    </style>
</head>
<body>
    <div class="header">
        <div class="container">
            <h1>Policy Tracker</h1>
            <div>Thematic analysis of {{.Total}} articles</div>
        </div>
    </div>
    <div class="nav-tabs">
        <div class="container">
            <div class="nav-tab active">Thematic Summary</div>
            <div class="nav-tab" onclick="window.location.href='index.html'">Chronology</div>
        </div>
    </div>
    <div class="container">
        <div class="toc">
            <h2>Contents</h2>
            <ul>
{{- range .Sections}}
                <li><a href="#{{.Theme}}">{{.Title}}</a></li>
{{- end}}
            </ul>
        </div>
{{- range .Sections}}
        <div class="theme-section" id="{{.Theme}}">
            <h2>{{.Title}}</h2>
            {{.Summary}}
            <a href="index.html?themes={{.Theme}}" class="view-all">View all {{.Count}} articles in this category &rarr;</a>
        </div>
{{- end}}
        <div class="footer">
            <div class="container">
                <p>Generated: {{.Generated}}</p>
                <p>Source: Contemporary news reporting from major outlets</p>
            </div>
        </div>
    </div>
</body>
</html>
`
