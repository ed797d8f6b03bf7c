package ui

// GetStyles returns the CSS for the header and the demo shell
func GetStyles() string {
	return `
        body {
            font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif;
            background: #f5f6fa;
            margin: 0;
            padding-top: 56px;
        }
        .cask-header .navbar-fixed-top {
            position: fixed;
            top: 0;
            left: 0;
            right: 0;
            z-index: 1030;
            padding: 0;
        }
        .cask-header nav.navbar.cdap {
            display: flex;
            align-items: center;
            width: 100%;
            height: 56px;
            padding: 0 1rem;
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            box-shadow: 0 2px 10px rgba(0,0,0,0.1);
        }
        .cask-header .brand-header {
            display: flex;
            align-items: center;
            gap: 0.5rem;
        }
        .cask-header .navbar-brand {
            background: none;
            border: none;
            color: #fff;
            font-weight: 700;
            cursor: pointer;
        }
        .cask-header .brand-home {
            color: rgba(255,255,255,0.8);
        }
        .cask-header .navbar-list,
        .cask-header .navbar-actions {
            display: flex;
            list-style: none;
            gap: 0.25rem;
            margin: 0 0 0 1.5rem;
            padding: 0;
        }
        .cask-header .navbar-actions {
            margin-left: auto;
        }
        .cask-header .navbar-list a {
            display: block;
            padding: 0.5rem 0.75rem;
            color: rgba(255,255,255,0.85);
            text-decoration: none;
            border-radius: 6px;
        }
        .cask-header .navbar-list li.active a,
        .cask-header .navbar-list a:hover {
            background: rgba(255,255,255,0.18);
            color: #fff;
        }
        .cask-header .hide {
            display: none;
        }
        .cask-header .display-container {
            position: fixed;
            top: 56px;
            left: 0;
            right: 0;
            bottom: 0;
            z-index: 1020;
            background: rgba(0,0,0,0.35);
        }
        .header-sidebar {
            width: 240px;
            height: 100%;
            background: linear-gradient(180deg, rgba(88, 70, 130, 0.95) 0%, rgba(68, 50, 100, 0.98) 100%);
            box-shadow: 4px 0 20px rgba(0,0,0,0.15);
            padding: 1.25rem 0;
        }
        .header-sidebar-title {
            padding: 0 1rem 0.75rem;
            font-size: 0.75rem;
            font-weight: 600;
            text-transform: uppercase;
            letter-spacing: 0.05em;
            color: rgba(255,255,255,0.6);
        }
        .header-sidebar-nav {
            display: flex;
            flex-direction: column;
            gap: 2px;
        }
        .header-sidebar-link {
            display: flex;
            align-items: center;
            gap: 0.6rem;
            padding: 0.65rem 1rem;
            color: rgba(255,255,255,0.85);
            text-decoration: none;
            font-size: 0.9rem;
            border-left: 3px solid transparent;
        }
        .header-sidebar-link:hover {
            background: rgba(255,255,255,0.12);
            color: #fff;
        }
        .header-sidebar-link.active {
            background: rgba(255,255,255,0.18);
            color: #fff;
            font-weight: 600;
            border-left-color: #fff;
        }
        .suite-content {
            max-width: 1100px;
            margin: 2rem auto;
            padding: 0 1rem;
        }
        .card {
            border: none;
            border-radius: 10px;
            box-shadow: 0 2px 10px rgba(0,0,0,0.08);
        }
        .card-header {
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            color: white;
            border-radius: 10px 10px 0 0 !important;
            font-weight: 600;
        }
        code.url {
            word-break: break-all;
        }
    `
}
