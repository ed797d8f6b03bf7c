package ui

// GetScripts returns the JavaScript that wires the sidebar toggle.
// The class flips immediately; the new state is then posted so it survives reloads.
func GetScripts() string {
	return `
        document.addEventListener('DOMContentLoaded', function() {
            document.querySelectorAll('.cask-header').forEach(function(header) {
                var backdrop = header.querySelector('[data-sidebar-backdrop]');
                var toggleURL = header.getAttribute('data-toggle-url');

                function toggleSidebar() {
                    var open = backdrop.classList.contains('hide');
                    backdrop.className = open ? 'display-container' : 'hide';
                    if (toggleURL) {
                        fetch(toggleURL, {method: 'POST', credentials: 'same-origin'});
                    }
                }

                header.querySelectorAll('[data-toggle-sidebar]').forEach(function(el) {
                    el.addEventListener('click', toggleSidebar);
                });
                backdrop.addEventListener('click', toggleSidebar);
                header.querySelectorAll('[data-sidebar-panel]').forEach(function(panel) {
                    panel.addEventListener('click', function(e) {
                        e.stopPropagation();
                    });
                });
            });
        });
    `
}
